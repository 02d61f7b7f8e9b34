// Package overlap finds common working hours across timezones. The
// pairwise form intersects two zones' working windows within a single
// calendar day; the multi-zone form additionally handles overnight
// wraparound. Hours are real numbers of clock hours (9.5 is 9:30).
package overlap

import (
	"math"
	"time"

	"github.com/chronomap-dev/chronomap/pkg/offset"
)

// Default working window used when a caller has no preference.
const (
	DefaultWorkStart = 9.0
	DefaultWorkEnd   = 18.0
)

// Window is the pairwise overlap of two zones' working hours, expressed in
// each zone's own clock frame.
type Window struct {
	AStart       float64 `json:"aStart"`
	AEnd         float64 `json:"aEnd"`
	BStart       float64 `json:"bStart"`
	BEnd         float64 `json:"bEnd"`
	OverlapHours float64 `json:"overlapHours"`
}

// Hours computes the overlap of the [workStart, workEnd] working window
// between two zones, using their offsets at the current instant. Returns
// nil when the windows do not intersect.
//
// The intersection is same-calendar-day only: an overlap straddling
// midnight in either frame is not found here. MultiZone handles overnight
// windows.
func Hours(zoneA, zoneB string, workStart, workEnd float64) *Window {
	now := time.Now()
	diffHours := float64(offset.Minutes(zoneA, now)-offset.Minutes(zoneB, now)) / 60

	// B's working window on A's clock.
	bStartInA := workStart + diffHours
	bEndInA := workEnd + diffHours

	start := math.Max(workStart, bStartInA)
	end := math.Min(workEnd, bEndInA)
	if end-start <= 0 {
		return nil
	}

	return &Window{
		AStart:       start,
		AEnd:         end,
		BStart:       start - diffHours,
		BEnd:         end - diffHours,
		OverlapHours: end - start,
	}
}
