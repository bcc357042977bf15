package console

import (
	"context"
	"time"

	"github.com/banshee-data/sceneview/internal/timeutil"
)

// Default heartbeat settings.
const (
	DefaultHeartbeatInterval = 5 * time.Second
	DefaultHeartbeatText     = "123"
)

// Heartbeat appends a fixed line to the console at a fixed interval so an idle
// viewer still shows signs of life.
type Heartbeat struct {
	out      Appender
	clock    timeutil.Clock
	interval time.Duration
	text     string
}

// NewHeartbeat returns a heartbeat writing text to out every interval.
// Zero values fall back to the defaults and a nil clock uses the wall clock.
func NewHeartbeat(out Appender, clock timeutil.Clock, interval time.Duration, text string) *Heartbeat {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	if text == "" {
		text = DefaultHeartbeatText
	}
	return &Heartbeat{out: out, clock: clock, interval: interval, text: text}
}

// Interval returns the configured tick interval.
func (h *Heartbeat) Interval() time.Duration { return h.interval }

// Run appends the heartbeat text on every tick until ctx is cancelled and
// returns ctx.Err().
func (h *Heartbeat) Run(ctx context.Context) error {
	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			h.out.Append(h.text)
		}
	}
}
