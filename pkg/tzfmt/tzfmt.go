// Package tzfmt renders offsets and zone-local times as display strings.
// All functions are resilient to invalid zones: they degrade to the
// documented placeholder strings rather than returning errors, so UI
// callers never need to wrap rendering in error handling.
package tzfmt

import (
	"fmt"
	"math"
	"time"

	"github.com/chronomap-dev/chronomap/pkg/civil"
	"github.com/chronomap-dev/chronomap/pkg/offset"
)

// Placeholders shown when a zone name is rejected by the timezone database.
const (
	InvalidClock = "--:--"
	InvalidDate  = "---"
)

// OffsetStringAt renders zone's UTC offset at the given instant as
// "GMT+5", "GMT-5" or "GMT+5:30". The sign is always explicit and the
// hour/minute split is magnitude-based; minutes appear only when nonzero,
// zero-padded to two digits. Always recomputes, bypassing the cache.
func OffsetStringAt(zone string, at time.Time) string {
	minutes := offset.Minutes(zone, at)
	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	abs := minutes
	if abs < 0 {
		abs = -abs
	}
	if abs%60 == 0 {
		return fmt.Sprintf("GMT%s%d", sign, abs/60)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, abs/60, abs%60)
}

// OffsetString renders zone's current UTC offset, served from the
// catalog-backed cache when possible. Cached values may be up to an hour
// stale; callers that need an exact instant use OffsetStringAt.
func OffsetString(zone string) string {
	return defaultCache.offsetString(zone)
}

// FormatHour renders a fractional clock hour as zero-padded "HH:MM"
// (9 -> "09:00", 13.5 -> "13:30").
func FormatHour(hour float64) string {
	h := int(math.Floor(hour))
	m := int(math.Round((hour - float64(h)) * 60))
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ClockIn renders the 12-hour time in zone at the given instant, or
// "--:--" for an invalid zone.
func ClockIn(zone string, at time.Time) string {
	s, err := civil.Clock(zone, at)
	if err != nil {
		return InvalidClock
	}
	return s
}

// DateIn renders a short weekday/month/day string in zone, or "---" for an
// invalid zone.
func DateIn(zone string, at time.Time) string {
	s, err := civil.Date(zone, at)
	if err != nil {
		return InvalidDate
	}
	return s
}

// DateTimeIn renders a combined date and 12-hour time string in zone, or
// "---" for an invalid zone.
func DateTimeIn(zone string, at time.Time) string {
	s, err := civil.DateTime(zone, at)
	if err != nil {
		return InvalidDate
	}
	return s
}
