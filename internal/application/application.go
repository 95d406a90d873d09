package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"auksion_bot/internal/config"
	"auksion_bot/internal/domain/catalog"
	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/infrastructure/auksion"
	"auksion_bot/internal/infrastructure/memstore"
	"auksion_bot/internal/infrastructure/notifier"
	"auksion_bot/internal/infrastructure/persistence"
	"auksion_bot/internal/server"
	"auksion_bot/internal/transport/bot"
	"auksion_bot/internal/transport/bot/session"
	"auksion_bot/internal/worker"
	"auksion_bot/pkg/application/connectors"
	"auksion_bot/pkg/application/modules"
	"auksion_bot/pkg/logx"
	"auksion_bot/pkg/middlewarex"
)

const (
	appName    = "auksion-bot"
	appVersion = "dev"

	channelBuffer  = 100
	logFieldMaxLen = 2048

	taskRefreshFavorites = "favorites:refresh"
)

func Run(ctx context.Context, log *slog.Logger, cancel context.CancelFunc) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// Каталог фильтров собран вручную, дырки видны только в рантайме
	catalog.Validate(ctx, log)

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	rds := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rds.Client(ctx)
	defer rds.Close(ctx)

	// 3. Storage
	store := memstore.New()
	listingRepo := persistence.NewListingRepository(db)
	sessions := session.NewStore(redisClient, cfg.Bot.SessionTTL)

	// 4. Upstream
	client := auksion.NewClient(cfg.Auksion, store)
	defer client.Close()

	svc := service.NewLotService(client, store)

	// 5. Telegram
	tgBot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	inquiries := make(chan entity.Inquiry, channelBuffer)
	alerts := make(chan entity.LotAlert, channelBuffer)

	alertBot := notifier.NewTelegramBot(tgBot, cfg.Bot.AdminChatID)
	if err = alertBot.SendText(ctx, "🚀 Bot ishga tushdi"); err != nil {
		log.Error("notifier test failed", "error", err)
	}

	go func() {
		log.Info("notifier bot started listening")
		if err := alertBot.Run(ctx, inquiries, alerts); err != nil {
			if ctx.Err() == nil {
				log.Error("notifier bot stopped", "error", err)
			}
		}
	}()

	tgTransport, err := bot.New(cfg.Bot, tgBot, svc, sessions, listingRepo, inquiries)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	// 6. Workers
	watcher := worker.NewFavoriteWatcher(svc, alerts).
		WithInterval(cfg.Bot.FavoritesPeriod)

	if err = watcher.Start(ctx); err != nil {
		return fmt.Errorf("watcher.Start: %w", err)
	}
	defer watcher.Stop()

	// 7. Servers
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tgTransport.Run(gCtx); err != nil && gCtx.Err() == nil {
			return fmt.Errorf("bot.Run: %w", err)
		}

		return nil
	})

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(gCtx, g, &http.Server{ //nolint:exhaustruct
		Addr:              cfg.Server.ListenAddress,
		Handler:           newRouter(listingRepo),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          appName,
		Version:       appVersion,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(gCtx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricListenAddress,
	}.Run(gCtx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(gCtx, g,
		modules.AsynqQueues{"default": 1},
		modules.AsynqHandler{
			Pattern: taskRefreshFavorites,
			Handle: func(ctx context.Context, _ *asynq.Task) error {
				watcher.RefreshOnce(ctx)
				return nil
			},
		},
	)

	log.Info("application started")

	if err = g.Wait(); err != nil {
		cancel()
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopping...")

	return nil
}

func newRouter(listings *persistence.ListingRepository) http.Handler {
	r := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	server.NewServer(
		server.NewListingServer(listings),
	).RegisterRoutes(r)

	return r
}
