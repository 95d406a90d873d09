package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"auksion_bot/internal/config"
	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/infrastructure/persistence"
	"auksion_bot/internal/transport/bot/handler"
	"auksion_bot/internal/transport/bot/session"
)

// Bot представляет собой Telegram-бота
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

// New создает новый экземпляр бота
func New(
	cfg config.Bot,
	bot *telego.Bot,
	svc *service.LotService,
	sessions *session.Store,
	listings *persistence.ListingRepository,
	inquiries chan<- entity.Inquiry,
) (*Bot, error) {
	// Получаем обновления через long polling
	updates, err := bot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	// Создаем BotHandler
	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot handler: %w", err)
	}

	// Создаем обработчик команд
	commandHandler := handler.New(svc, sessions, listings, inquiries)

	commandHandler.RegisterRoutes(botHandler, cfg.AdminUserIDs)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
		handler:    commandHandler,
	}, nil
}

// Run запускает бота
func (b *Bot) Run(ctx context.Context) error {
	// Запускаем обработку обновлений
	go func() {
		if err := b.botHandler.Start(); err != nil {
			log.Printf("Failed to start bot handler: %v", err)
		}
	}()

	// Ждем завершения
	<-ctx.Done()

	// Останавливаем обработчик
	if err := b.botHandler.Stop(); err != nil {
		log.Printf("Failed to stop bot handler: %v", err)
	}

	return ctx.Err()
}
