package app

import (
	"go-arcade-shooter/internal/event"
	"time"
)

// OverlayTimer delays the game-over panel so the death burst stays visible.
// It is armed by the GameOver event and polled from the host loop; it only
// fires for the session that armed it, so a restart during the delay can
// never put the panel over a new game.
type OverlayTimer struct {
	delay    time.Duration
	now      func() time.Time
	deadline time.Time
	epoch    uint64
	armed    bool
}

func NewOverlayTimer(delay time.Duration, now func() time.Time) *OverlayTimer {
	if now == nil {
		now = time.Now
	}
	return &OverlayTimer{delay: delay, now: now}
}

// Arm schedules the overlay for the given session.
func (o *OverlayTimer) Arm(epoch uint64) {
	o.deadline = o.now().Add(o.delay)
	o.epoch = epoch
	o.armed = true
}

func (o *OverlayTimer) Cancel() {
	o.armed = false
}

func (o *OverlayTimer) Armed() bool {
	return o.armed
}

// Fire reports true exactly once, when the delay has passed and the
// session is still the one that armed the timer. A stale timer is dropped.
func (o *OverlayTimer) Fire(currentEpoch uint64) bool {
	if !o.armed {
		return false
	}
	if currentEpoch != o.epoch {
		o.armed = false
		return false
	}
	if o.now().Before(o.deadline) {
		return false
	}
	o.armed = false
	return true
}

// OnEvent arms the timer on GameOver and cancels it on GameStarted.
func (o *OverlayTimer) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			o.Arm(data.Epoch)
		}
	case event.GameStarted:
		o.Cancel()
	}
}
