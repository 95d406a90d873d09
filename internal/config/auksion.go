package config

import "time"

type Auksion struct {
	BaseURL       string        `env:"AUKSION_BASE_URL" envDefault:"https://e-auksion.uz/api/front"`
	ImagesBaseURL string        `env:"AUKSION_IMAGES_BASE_URL" envDefault:"https://newfiles.e-auksion.uz/files-worker/api/v1/images"`
	UserAgent     string        `env:"AUKSION_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
	Timeout       time.Duration `env:"AUKSION_TIMEOUT" envDefault:"30s"`
	PerPage       int           `env:"AUKSION_PER_PAGE" envDefault:"10"`
	CacheTTL      time.Duration `env:"AUKSION_CACHE_TTL" envDefault:"5m"`
}
