package notification

import (
	"context"
	"sync/atomic"
)

// Switch wraps a Sender with a runtime on/off toggle.
type Switch struct {
	inner   Sender
	enabled atomic.Bool
}

// NewSwitch returns a switch that starts enabled.
func NewSwitch(inner Sender) *Switch {
	s := &Switch{inner: inner}
	s.enabled.Store(true)
	return s
}

func (s *Switch) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled flips the toggle and returns the previous value.
func (s *Switch) SetEnabled(enabled bool) bool {
	return s.enabled.Swap(enabled)
}

func (s *Switch) Send(ctx context.Context, msg Message) Outcome {
	if !s.enabled.Load() {
		return Outcome{Err: ErrDisabled}
	}
	return s.inner.Send(ctx, msg)
}
