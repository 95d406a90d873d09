package config

import "time"

type Bot struct {
	Token string `env:"BOT_TOKEN,required" json:"-"`
	// AdminChatID: чат, куда уходят заявки и уведомления
	AdminChatID     int64         `env:"BOT_ADMIN_CHAT_ID,required"`
	AdminUserIDs    []int64       `env:"BOT_ADMIN_USER_IDS" envSeparator:","`
	SessionTTL      time.Duration `env:"BOT_SESSION_TTL" envDefault:"24h"`
	FavoritesPeriod time.Duration `env:"BOT_FAVORITES_PERIOD" envDefault:"30m"`
}
