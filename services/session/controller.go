package session

import (
	"context"
	"sync"

	"guestevents/services/gateway"

	"go.uber.org/zap"
)

// URLOpener hands a link to the platform, e.g. a browser or maps app.
type URLOpener interface {
	Open(url string) error
}

// URLOpenerFunc adapts a function to URLOpener.
type URLOpenerFunc func(url string) error

func (f URLOpenerFunc) Open(url string) error { return f(url) }

// Controller owns the State and drives Reduce against a Gateway. Dispatch
// performs every resulting effect serially before returning, so callers
// observe the quiescent state.
type Controller struct {
	Gateway gateway.Gateway
	Opener  URLOpener
	Logger  *zap.Logger

	// Diagnostics, if set, receives every silent failure. Sends never block;
	// a full channel drops the value after it is logged.
	Diagnostics chan<- Diagnostic

	mu    sync.Mutex
	state State
}

// NewController returns a Controller in the initial state.
func NewController(gw gateway.Gateway, opener URLOpener, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Gateway: gw,
		Opener:  opener,
		Logger:  logger,
		state:   NewState(),
	}
}

// State returns the current state value. It never waits on the gateway.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch feeds ev to the reducer and runs effects until none remain. The
// lock is held only while reducing, so gateway calls run unlocked and a
// concurrent Dispatch may interleave; request tokens keep late results from
// overwriting newer ones.
func (c *Controller) Dispatch(ctx context.Context, ev Event) State {
	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		for _, eff := range c.reduce(next) {
			if result := c.handle(ctx, eff); result != nil {
				queue = append(queue, result)
			}
		}
	}
	return c.State()
}

func (c *Controller) reduce(ev Event) []Effect {
	c.mu.Lock()
	defer c.mu.Unlock()

	var effects []Effect
	c.state, effects = Reduce(c.state, ev)
	return effects
}

func (c *Controller) handle(ctx context.Context, eff Effect) Event {
	switch eff := eff.(type) {
	case ReportEffect:
		c.Report(eff.Diagnostic)
		return nil
	case OpenURLEffect:
		if c.Opener == nil {
			return nil
		}
		if err := c.Opener.Open(eff.URL); err != nil {
			c.Logger.Warn("Failed to open link", zap.String("url", eff.URL), zap.Error(err))
		}
		return nil
	}

	result := Perform(ctx, c.Gateway, eff)
	LogOutcome(c.Logger, result)
	return result
}

// Report logs d and forwards it to the Diagnostics channel.
func (c *Controller) Report(d Diagnostic) {
	LogDiagnostic(c.Logger, d)
	if c.Diagnostics == nil {
		return
	}
	select {
	case c.Diagnostics <- d:
	default:
	}
}

// LogDiagnostic writes d at the level its kind warrants.
func LogDiagnostic(logger *zap.Logger, d Diagnostic) {
	fields := []zap.Field{
		zap.String("kind", d.Kind.String()),
		zap.Uint64("token", d.Token),
	}
	if d.EventID != "" {
		fields = append(fields, zap.String("eventId", d.EventID))
	}
	if d.Err != nil {
		fields = append(fields, zap.Error(d.Err))
	}
	switch d.Kind {
	case DiagnosticStale:
		logger.Debug("Discarded stale response", fields...)
	case DiagnosticListUnavailable:
		logger.Warn("Error fetching events", fields...)
	default:
		logger.Warn("Error fetching event details", fields...)
	}
}

// LogOutcome logs the visible OTP failures. Fetch failures are reported as
// diagnostics by the reducer instead.
func LogOutcome(logger *zap.Logger, ev Event) {
	switch ev := ev.(type) {
	case OTPRequested:
		if ev.Err != nil {
			logger.Warn("Error sending OTP", zap.Error(ev.Err))
		}
	case OTPVerified:
		if ev.Err != nil {
			logger.Warn("Error verifying OTP", zap.Error(ev.Err))
		}
	}
}
