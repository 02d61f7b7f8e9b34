package overlap

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/chronomap-dev/chronomap/pkg/offset"
	"github.com/chronomap-dev/chronomap/pkg/tzfmt"
)

// ParticipantType says how a participant entered the meeting plan.
type ParticipantType string

// Participant origins.
const (
	TypeMe       ParticipantType = "me"
	TypeContact  ParticipantType = "contact"
	TypeTimezone ParticipantType = "timezone"
)

// WorkingHours is a participant's local working window. Start and End are
// clock hours in [0, 24); End < Start means the window wraps past midnight
// (a night-shift window like 22:00-06:00).
type WorkingHours struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Participant is one member of a meeting plan.
type Participant struct {
	ID           string          `json:"id"`
	Type         ParticipantType `json:"type"`
	Timezone     string          `json:"timezone"`
	Label        string          `json:"label"`
	WorkingHours WorkingHours    `json:"workingHours"`
}

// ParticipantTime is the shared overlap window expressed in one
// participant's local clock.
type ParticipantTime struct {
	ParticipantID string `json:"participantId"`
	Label         string `json:"label"`
	Timezone      string `json:"timezone"`
	StartTime     string `json:"startTime"` // "HH:MM"
	EndTime       string `json:"endTime"`   // "HH:MM"
	IsLateHours   bool   `json:"isLateHours"`
}

// MultiZoneResult is the overlap across all participants. OverlapHours is
// one global quantity shared by everyone; only its local clock expression
// differs per participant.
type MultiZoneResult struct {
	ParticipantTimes []ParticipantTime `json:"participantTimes"`
	OverlapHours     float64           `json:"overlapHours"`
	HasOverlap       bool              `json:"hasOverlap"`
}

// A local overlap start before 7am or at/after 9pm counts as late hours.
const (
	lateBefore = 7.0
	lateAfter  = 21.0
)

// MultiZone finds the window simultaneously inside every participant's
// working hours. Fewer than two participants is not an error: it reports
// no overlap with empty detail.
//
// Each window is first normalized into a monotonic interval (an overnight
// window [22, 6) becomes [22, 30]), then shifted into the first
// participant's clock frame, and the shifted intervals are folded with
// max-of-starts/min-of-ends. Fold order cannot change the result, so the
// participant list order is used as given.
func MultiZone(participants []Participant) MultiZoneResult {
	if len(participants) < 2 {
		return MultiZoneResult{ParticipantTimes: []ParticipantTime{}}
	}

	now := time.Now()
	refOffset := offset.Minutes(participants[0].Timezone, now)

	// Offset difference to the reference frame, in hours, per participant.
	diffs := make([]float64, len(participants))

	commonStart := math.Inf(-1)
	commonEnd := math.Inf(1)
	for i, p := range participants {
		start := p.WorkingHours.Start
		end := p.WorkingHours.End
		if end < start {
			end += 24
		}

		diffs[i] = float64(refOffset-offset.Minutes(p.Timezone, now)) / 60
		commonStart = math.Max(commonStart, start+diffs[i])
		commonEnd = math.Min(commonEnd, end+diffs[i])
	}

	length := commonEnd - commonStart
	if length <= 0 {
		return MultiZoneResult{ParticipantTimes: []ParticipantTime{}}
	}

	times := make([]ParticipantTime, 0, len(participants))
	for i, p := range participants {
		localStart := math.Mod(commonStart-diffs[i]+48, 24)
		localEnd := math.Mod(commonEnd-diffs[i]+48, 24)

		times = append(times, ParticipantTime{
			ParticipantID: p.ID,
			Label:         p.Label,
			Timezone:      p.Timezone,
			StartTime:     tzfmt.FormatHour(localStart),
			EndTime:       tzfmt.FormatHour(localEnd),
			IsLateHours:   localStart < lateBefore || localStart >= lateAfter,
		})
	}

	return MultiZoneResult{
		HasOverlap: true,
		// Strip floating-point residue from the offset arithmetic.
		OverlapHours:     math.Round(length*100) / 100,
		ParticipantTimes: times,
	}
}

// ShareText renders a multi-zone result as a plain-text meeting summary
// suitable for a share sheet or chat message.
func ShareText(r MultiZoneResult) string {
	if !r.HasOverlap {
		return "No common working hours found."
	}

	var b strings.Builder
	unit := "hours"
	if r.OverlapHours == 1 {
		unit = "hour"
	}
	fmt.Fprintf(&b, "Meeting window (%g %s overlap):\n", r.OverlapHours, unit)
	for _, pt := range r.ParticipantTimes {
		fmt.Fprintf(&b, "%s: %s – %s (%s)", pt.Label, pt.StartTime, pt.EndTime, pt.Timezone)
		if pt.IsLateHours {
			b.WriteString(" [late hours]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
