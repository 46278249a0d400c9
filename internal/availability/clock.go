// Package availability answers "is ordering allowed right now?" from the
// configured opening window and the wall clock.
package availability

import (
	"context"
	"sync"
	"time"

	"prato/internal/model"

	"github.com/rs/zerolog"
)

// MaxPollInterval bounds how stale the open/closed answer may be. The
// window boundary can be crossed while a client sits on the page, so the
// clock re-evaluates at least this often.
const MaxPollInterval = 60 * time.Second

// WindowSource provides the current opening window. Returns nil with no
// error when no window is configured.
type WindowSource interface {
	GetOpeningWindow(ctx context.Context) (*model.OpeningWindow, error)
}

// OpenAt reports whether ordering is permitted at time t under window w.
// A nil window or a Sunday is always closed. Otherwise the window is
// inclusive on both bounds, at minute granularity.
func OpenAt(t time.Time, w *model.OpeningWindow) bool {
	if w == nil {
		return false
	}
	if t.Weekday() == time.Sunday {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= w.OpensAt && minute <= w.ClosesAt
}

// Clock periodically re-derives the open/closed state from the window
// source. It only updates its exposed state; it never touches carts or
// submitter fields.
type Clock struct {
	source   WindowSource
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger

	mu     sync.RWMutex
	window *model.OpeningWindow
	open   bool
}

// NewClock creates a clock polling source at the given interval. Intervals
// longer than MaxPollInterval (or non-positive) are clamped to it.
func NewClock(source WindowSource, interval time.Duration, logger zerolog.Logger) *Clock {
	if interval <= 0 || interval > MaxPollInterval {
		interval = MaxPollInterval
	}
	return &Clock{
		source:   source,
		interval: interval,
		now:      time.Now,
		logger:   logger.With().Str("component", "availability-clock").Logger(),
	}
}

// IsOpen returns the most recently computed open/closed state.
func (c *Clock) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

// Window returns the most recently fetched opening window, or nil when
// none is configured.
func (c *Clock) Window() *model.OpeningWindow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.window
}

// Refresh fetches the window and recomputes the open state once. A fetch
// failure keeps the previous window rather than flapping to closed.
func (c *Clock) Refresh(ctx context.Context) {
	window, err := c.source.GetOpeningWindow(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to fetch opening window, keeping previous")
	} else {
		c.window = window
	}

	wasOpen := c.open
	c.open = OpenAt(c.now(), c.window)

	if c.open != wasOpen {
		c.logger.Info().Bool("open", c.open).Msg("availability changed")
	}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (c *Clock) Run(ctx context.Context) {
	c.Refresh(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("availability clock stopped")
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}
