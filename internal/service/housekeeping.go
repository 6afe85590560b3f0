package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultPurgeSchedule — как часто чистить истёкшие refresh-сессии.
const DefaultPurgeSchedule = "@every 1h"

// Housekeeper — фоновые задачи обслуживания по расписанию cron.
type Housekeeper struct {
	cron   *cron.Cron
	tokens *TokenService
	logger *zap.SugaredLogger
}

func NewHousekeeper(tokens *TokenService, logger *zap.SugaredLogger) *Housekeeper {
	return &Housekeeper{
		cron:   cron.New(),
		tokens: tokens,
		logger: logger,
	}
}

// Start регистрирует задачи и запускает планировщик.
func (h *Housekeeper) Start(schedule string) error {
	if _, err := h.cron.AddFunc(schedule, func() { h.PurgeNow(context.Background()) }); err != nil {
		return err
	}
	h.cron.Start()
	h.logger.Infow("housekeeping started", "schedule", schedule)
	return nil
}

// Stop останавливает планировщик и ждёт завершения текущей задачи (или ctx).
func (h *Housekeeper) Stop(ctx context.Context) {
	select {
	case <-h.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// PurgeNow однократно удаляет истёкшие refresh-сессии.
func (h *Housekeeper) PurgeNow(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := h.tokens.PurgeExpired(ctx)
	if err != nil {
		h.logger.Errorw("purge expired refresh sessions failed", "err", err)
		return 0
	}
	if n > 0 {
		h.logger.Infow("purged expired refresh sessions", "count", n)
	}
	return n
}
