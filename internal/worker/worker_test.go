package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingImporter struct {
	runs atomic.Int64
	err  error
}

func (c *countingImporter) ImportNews(ctx context.Context) error {
	c.runs.Add(1)
	return c.err
}

func TestWorker_RunsImmediatelyAndOnTicks(t *testing.T) {
	importer := &countingImporter{}
	w := New(importer, 20*time.Millisecond, zap.NewNop())

	w.Start()
	time.Sleep(70 * time.Millisecond)
	w.Stop()

	runs := importer.runs.Load()
	// One immediate run plus at least one tick.
	assert.GreaterOrEqual(t, runs, int64(2))
}

func TestWorker_StopHaltsRuns(t *testing.T) {
	importer := &countingImporter{}
	w := New(importer, 10*time.Millisecond, zap.NewNop())

	w.Start()
	w.Stop()

	runs := importer.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, runs, importer.runs.Load())
}

func TestWorker_SurvivesFailedRuns(t *testing.T) {
	importer := &countingImporter{err: errors.New("import failed")}
	w := New(importer, 20*time.Millisecond, zap.NewNop())

	w.Start()
	time.Sleep(70 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, importer.runs.Load(), int64(2))
}
