package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mattjoyce/axis-scorer/internal/log"
)

// Tracker runs detached background tasks and keeps the process alive until
// they settle. The HTTP response never waits on a task, but shutdown waits
// on Wait. Tasks get context.Background(): once started they are not
// cancelled.
type Tracker struct {
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewTracker creates a Tracker.
func NewTracker() *Tracker {
	return &Tracker{logger: log.WithComponent("tracker")}
}

// Go spawns fn on its own goroutine. Panics are recovered and logged so a
// bad task cannot take the server down.
func (t *Tracker) Go(name string, fn func(ctx context.Context)) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("background task panicked", "task", name, "panic", r)
			}
		}()
		fn(context.Background())
	}()
}

// Wait blocks until every spawned task has settled.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
