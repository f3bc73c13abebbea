package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/infrastructure/logger"
	"ordervoice/order-api/internal/infrastructure/metrics"
	"ordervoice/order-api/internal/utils/platformerrors"
)

const (
	DefaultSweepIntervalMinutes = 15
	CronJobTimeout              = 2 * time.Minute
)

// Crontab runs background maintenance jobs, currently the quote-expiry sweep
// that keeps the expired-quote gauge current.
type Crontab struct {
	ctab   *crontab.Crontab
	orders order.Repository
	cfg    *config.Config
}

func NewCrontab(cfg *config.Config, orders order.Repository) *Crontab {
	return &Crontab{
		ctab:   crontab.New(),
		orders: orders,
		cfg:    cfg,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// execute once on server start
	c.sweepExpiredQuotes(ctx)

	if c.cfg.QuoteMonitorEnabled {
		interval := c.cfg.QuoteMonitorIntervalMinutes
		if interval <= 0 {
			interval = DefaultSweepIntervalMinutes
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.sweepExpiredQuotes(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add quote expiry job")
		}
		log.Info().Msgf("Quote expiry sweep scheduled: every %d minute(s)", interval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweepExpiredQuotes(ctx context.Context) {
	log := logger.GetLogger()

	count, err := c.orders.CountExpiredQuotes(ctx, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("Failed to count expired quotes")
		return
	}

	metrics.SetExpiredQuotes(count)
	if count > 0 {
		log.Info().Int64("expired_quotes", count).Msg("Expired quotes pending review")
	}
}
