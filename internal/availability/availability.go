// Package availability produces the bookable dates and daily time slots.
// The clock is injected so results are deterministic in tests. Slots are
// static: no capacity or conflict checking happens here (that gap is
// documented in DESIGN.md).
package availability

import (
	"errors"
	"time"
)

// ErrInvalidTimeSlot is returned when a time string is not one of the
// provider's slots.
var ErrInvalidTimeSlot = errors.New("invalid time slot")

// DefaultWindowDays is how many days ahead clients can book.
const DefaultWindowDays = 14

var defaultSlots = []string{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00",
}

// Provider computes bookable dates from an injected clock.
type Provider struct {
	now        func() time.Time
	windowDays int
	slots      []string
}

// New creates a provider. now defaults to time.Now, windowDays to
// DefaultWindowDays.
func New(now func() time.Time, windowDays int) *Provider {
	if now == nil {
		now = time.Now
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Provider{now: now, windowDays: windowDays, slots: defaultSlots}
}

// Dates returns the bookable dates: one per day, starting the day after
// the current instant. Today is never offered.
func (p *Provider) Dates() []time.Time {
	ref := p.now()
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, 0, p.windowDays)
	for i := 1; i <= p.windowDays; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// Slots returns the fixed ordered daily time slots.
func (p *Provider) Slots() []string {
	out := make([]string, len(p.slots))
	copy(out, p.slots)
	return out
}

// ValidSlot reports whether s is one of the provider's slots.
func (p *Provider) ValidSlot(s string) bool {
	for _, slot := range p.slots {
		if slot == s {
			return true
		}
	}
	return false
}
