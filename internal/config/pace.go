package config

import "time"

// Interval returns the tick interval for a snake of the given length.
// Vertical movement uses its own base. The interval shrinks by one
// millisecond per segment and never drops below one millisecond.
func (p PaceConfig) Interval(vertical bool, length int) time.Duration {
	base := p.HorizontalBaseMs
	if vertical {
		base = p.VerticalBaseMs
	}
	ms := base - length
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}
