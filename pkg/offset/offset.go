// Package offset computes UTC offsets without consulting a platform
// "give me the offset" primitive. The offset is derived by formatting the
// instant's wall-clock components in the target zone, re-reading them as if
// they were UTC, and diffing against the actual instant. This keeps the
// numeric path and the display path on the same timezone database.
package offset

import (
	"log/slog"
	"math"
	"time"

	"github.com/chronomap-dev/chronomap/pkg/civil"
)

// Minutes returns the UTC offset of zone at the given instant, in minutes.
// UTC and Etc/UTC short-circuit to 0 without touching the formatter, which
// also guards against formatter edge cases at DST boundaries. An invalid
// zone degrades to 0; callers needing to distinguish must check
// civil.Valid first.
func Minutes(zone string, at time.Time) int {
	minutes, ok := lookup(zone, at)
	if !ok {
		slog.Warn("offset lookup failed, falling back to UTC", "zone", zone)
		return 0
	}
	return minutes
}

// lookup is the fallible primitive behind Minutes. The ok flag makes the
// fallback path testable; the public API collapses it to the documented
// default.
func lookup(zone string, at time.Time) (minutes int, ok bool) {
	if zone == "UTC" || zone == "Etc/UTC" {
		return 0, true
	}

	c, err := civil.Time(zone, at)
	if err != nil {
		return 0, false
	}

	// Some formatters emit hour 24 for midnight.
	if c.Hour == 24 {
		c.Hour = 0
	}

	// Reinterpret the wall-clock components as UTC; the gap to the actual
	// instant is the offset. Rounding absorbs sub-second jitter.
	localAsUTC := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
	diff := localAsUTC.Sub(at)
	return int(math.Round(diff.Minutes())), true
}
