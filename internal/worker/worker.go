// Package worker runs the periodic news import job. One worker instance is
// started per process; the schedule itself does not exclude overlapping
// runs across processes.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Importer is the unit of work the worker triggers on every tick.
type Importer interface {
	ImportNews(ctx context.Context) error
}

// Worker triggers the importer on a fixed interval until stopped.
type Worker struct {
	importer Importer
	interval time.Duration
	logger   *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a worker with the given importer and interval.
func New(importer Importer, interval time.Duration, logger *zap.Logger) *Worker {
	return &Worker{
		importer: importer,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutine. The first run happens immediately.
func (w *Worker) Start() {
	var ctx context.Context
	ctx, w.cancel = context.WithCancel(context.Background())
	go w.run(ctx)
}

// Stop cancels the running worker and waits for it to exit.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	w.logger.Info("news import worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce(ctx)
	for {
		select {
		case <-ticker.C:
			w.runOnce(ctx)
		case <-ctx.Done():
			w.logger.Info("news import worker stopping")
			return
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	start := time.Now()
	if err := w.importer.ImportNews(ctx); err != nil {
		w.logger.Error("news import run failed", zap.Error(err))
		return
	}
	w.logger.Info("news import run completed", zap.Duration("duration", time.Since(start)))
}
