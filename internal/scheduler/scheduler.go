// Package scheduler wires up the cron job that periodically re-runs the
// default product query so the hot cache key is rebuilt once it expires.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
	"github.com/maicaalmonte/nutricalculator/internal/pipeline"
)

// Warmer runs the warm-up query on a fixed interval.
type Warmer struct {
	cron     *cron.Cron
	pipeline *pipeline.Service
	log      *zap.Logger
	spec     string // cron spec, e.g. "@every 2h"
}

// New creates a Warmer that fires every intervalHours hours.
func New(p *pipeline.Service, intervalHours int, log *zap.Logger) *Warmer {
	return &Warmer{
		cron:     cron.New(cron.WithLogger(cron.DefaultLogger)),
		pipeline: p,
		log:      log,
		spec:     fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also warms once
// immediately so the first request after startup can hit the cache.
func (w *Warmer) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() {
		w.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	w.cron.Start()
	w.log.Info("cache warmer started", zap.String("spec", w.spec))

	go w.warm(ctx)
	return nil
}

// Stop shuts the scheduler down.
func (w *Warmer) Stop() {
	w.cron.Stop()
	w.log.Info("cache warmer stopped")
}

// warm executes the default query. A fresh cache entry makes this a cheap
// no-op; an expired one triggers a full pipeline run and re-populates it.
func (w *Warmer) warm(ctx context.Context) {
	var params model.Params
	params.Normalize()

	records, err := w.pipeline.Products(ctx, params)
	if err != nil {
		w.log.Warn("cache warm-up failed", zap.Error(err))
		return
	}
	w.log.Info("cache warm-up complete", zap.Int("records", len(records)))
}
