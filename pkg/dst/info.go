package dst

import (
	"time"

	"github.com/chronomap-dev/chronomap/pkg/civil"
	"github.com/chronomap-dev/chronomap/pkg/offset"
	"github.com/chronomap-dev/chronomap/pkg/tzfmt"
)

// ZoneInfo is a diagnostic snapshot of a zone at an instant.
type ZoneInfo struct {
	IANAName       string `json:"ianaName"`
	OffsetString   string `json:"offsetString"`
	FormattedTime  string `json:"formattedTime"`
	FormattedDate  string `json:"formattedDate"`
	CurrentOffset  int    `json:"currentOffset"`
	StandardOffset int    `json:"standardOffset"`
	DSTOffset      int    `json:"dstOffset"`
	Valid          bool   `json:"isValid"`
	Active         bool   `json:"isDST"`
	HasDST         bool   `json:"hasDST"`
}

// Info gathers offset and DST details for a zone at an instant. An invalid
// zone yields the documented display defaults instead of an error.
func Info(zone string, at time.Time) ZoneInfo {
	if !civil.Valid(zone) {
		return ZoneInfo{
			IANAName:      zone,
			OffsetString:  "Invalid",
			FormattedTime: tzfmt.InvalidClock,
			FormattedDate: tzfmt.InvalidDate,
		}
	}

	year := at.UTC().Year()
	january := offset.Minutes(zone, time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC))
	july := offset.Minutes(zone, time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC))

	return ZoneInfo{
		IANAName:       zone,
		Valid:          true,
		CurrentOffset:  offset.Minutes(zone, at),
		OffsetString:   tzfmt.OffsetStringAt(zone, at),
		Active:         Active(zone, at),
		HasDST:         january != july,
		StandardOffset: min(january, july),
		DSTOffset:      max(january, july),
		FormattedTime:  tzfmt.ClockIn(zone, at),
		FormattedDate:  tzfmt.DateIn(zone, at),
	}
}
