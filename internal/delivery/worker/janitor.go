// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the session janitor
type JanitorParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

type sessionJanitor struct {
	sessionUC usecase.SessionUsecase
	interval  time.Duration
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSessionJanitor creates the worker that periodically removes expired sessions.
func NewSessionJanitor(params JanitorParams) delivery.Delivery {
	janitor := newSessionJanitor(params.SessionUC, params.Cfg.Session.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: janitor.stop,
	})

	return janitor
}

func newSessionJanitor(sessionUC usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionJanitor {
	return &sessionJanitor{
		sessionUC: sessionUC,
		interval:  interval,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Serve sweeps once per interval until stopped.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, lifecycle.DefaultTimeout)
	defer cancel()

	runID := uuid.NewString()
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, j.logger.With(slog.String("request_id", runID)))

	start := time.Now()
	removed, err := j.sessionUC.CleanupExpired(ctx)
	if err != nil {
		j.logger.Warn("Session cleanup failed", slog.String("request_id", runID), slog.Any("error", err))

		return
	}

	j.logger.Debug("Session sweep finished",
		slog.String("request_id", runID),
		slog.Int64("removed", removed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}

// stop ends Serve and waits for an in-flight sweep to finish.
func (j *sessionJanitor) stop(ctx context.Context) error {
	j.stopOnce.Do(func() { close(j.stopCh) })

	j.logger.Info("Shutting down session janitor")

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}

	return nil
}
