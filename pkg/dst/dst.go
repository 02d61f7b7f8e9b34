// Package dst determines daylight-saving state and locates transition
// instants. Everything is derived from offsets; no DST flag is ever stored.
package dst

import (
	"time"

	"github.com/chronomap-dev/chronomap/pkg/civil"
	"github.com/chronomap-dev/chronomap/pkg/offset"
)

// Active reports whether zone observes daylight saving time at the given
// instant. The standard (non-DST) offset for the year is the smaller of the
// January 1 and July 1 offsets, which orients correctly in both
// hemispheres: Northern zones are on standard time in January, Southern
// zones (Sydney) in July. When the two sampled offsets match, the zone
// observes no DST that year and the answer is always false.
func Active(zone string, at time.Time) bool {
	current := offset.Minutes(zone, at)

	year := at.UTC().Year()
	january := offset.Minutes(zone, time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC))
	july := offset.Minutes(zone, time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC))

	if january == july {
		return false
	}
	return current != min(january, july)
}

// Transitions returns the instants within year at which zone's UTC offset
// changes, in chronological order. Zones without DST yield an empty result;
// standard DST zones yield exactly two (spring forward, fall back). Zones
// with ad hoc government changes may yield more; the scan reports whatever
// discontinuities the timezone database encodes.
//
// The scan is two-phase: offsets are sampled at 12:00 wall clock each day,
// and a day whose sample differs from the previous day's is narrowed hour
// by hour to the first instant past the change.
func Transitions(zone string, year int) []time.Time {
	if !civil.Valid(zone) {
		return nil
	}

	var transitions []time.Time

	start, err := civil.Instant(zone, year, time.January, 1, 0)
	if err != nil {
		return nil
	}
	prev := offset.Minutes(zone, start)

	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= daysIn(year, month); day++ {
			sample, err := civil.Instant(zone, year, month, day, 12)
			if err != nil {
				return transitions
			}
			sampled := offset.Minutes(zone, sample)
			if sampled != prev {
				for hour := range 24 {
					at, err := civil.Instant(zone, year, month, day, hour)
					if err != nil {
						break
					}
					if o := offset.Minutes(zone, at); o != prev {
						transitions = append(transitions, at)
						prev = o
						break
					}
				}
			}
			prev = sampled
		}
	}
	return transitions
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
