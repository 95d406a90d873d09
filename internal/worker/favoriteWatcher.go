package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/pkg/logx"
)

// FavoriteWatcher периодически перечитывает избранные лоты и отправляет
// алерты об изменениях цены и статуса в канал уведомлений.
type FavoriteWatcher struct {
	svc    *service.LotService
	alerts chan<- entity.LotAlert

	interval time.Duration

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewFavoriteWatcher(
	svc *service.LotService,
	alerts chan<- entity.LotAlert,
) *FavoriteWatcher {
	return &FavoriteWatcher{
		svc:      svc,
		alerts:   alerts,
		interval: 30 * time.Minute,
	}
}

func (w *FavoriteWatcher) WithInterval(interval time.Duration) *FavoriteWatcher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *FavoriteWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("watcher is already running")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(watchCtx).Error("watcher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *FavoriteWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *FavoriteWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *FavoriteWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("favorite watcher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("favorite watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce — один проход по избранному. Вызывается и тикером, и
// asynq-задачей.
func (w *FavoriteWatcher) RefreshOnce(ctx context.Context) {
	alerts := w.svc.CheckFavorites(ctx)
	if len(alerts) == 0 {
		return
	}

	logger(ctx).Info("favorite changes detected", slog.Int("alerts", len(alerts)))

	for _, alert := range alerts {
		select {
		case w.alerts <- alert:
		case <-ctx.Done():
			return
		}
	}
}
