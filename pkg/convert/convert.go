// Package convert renders a single instant across target zones, pairing
// the formatted local time with the zone's label, offset and DST state.
package convert

import (
	"time"

	"github.com/chronomap-dev/chronomap/pkg/catalog"
	"github.com/chronomap-dev/chronomap/pkg/dst"
	"github.com/chronomap-dev/chronomap/pkg/tzfmt"
)

// Result is one zone's view of a converted instant.
type Result struct {
	TimeZone      string `json:"timeZone"`
	Label         string `json:"label"`
	ConvertedTime string `json:"convertedTime"`
	Offset        string `json:"offset"`
	IsDST         bool   `json:"isDST"`
}

// To converts an instant into one target zone. Invalid zones degrade to
// the display placeholders; they never error.
func To(at time.Time, zone string) Result {
	return Result{
		TimeZone:      zone,
		Label:         catalog.LabelFor(zone),
		ConvertedTime: tzfmt.DateTimeIn(zone, at),
		Offset:        tzfmt.OffsetStringAt(zone, at),
		IsDST:         dst.Active(zone, at),
	}
}

// Across converts an instant into every target zone, preserving order.
func Across(at time.Time, zones []string) []Result {
	results := make([]Result, 0, len(zones))
	for _, zone := range zones {
		results = append(results, To(at, zone))
	}
	return results
}
