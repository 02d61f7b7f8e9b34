package offset

import (
	"testing"
	"time"
)

func TestMinutesUTC(t *testing.T) {
	at := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	if got := Minutes("UTC", at); got != 0 {
		t.Errorf("Minutes(UTC) = %d, want 0", got)
	}
	if got := Minutes("Etc/UTC", at); got != 0 {
		t.Errorf("Minutes(Etc/UTC) = %d, want 0", got)
	}
}

func TestMinutesKnownOffsets(t *testing.T) {
	winter := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
		at   time.Time
		want int
	}{
		{"new york winter EST", "America/New_York", winter, -300},
		{"new york summer EDT", "America/New_York", summer, -240},
		{"london winter GMT", "Europe/London", winter, 0},
		{"london summer BST", "Europe/London", summer, 60},
		{"tokyo winter", "Asia/Tokyo", winter, 540},
		{"tokyo summer", "Asia/Tokyo", summer, 540},
		{"sydney summer AEDT in january", "Australia/Sydney", winter, 660},
		{"sydney winter AEST in july", "Australia/Sydney", summer, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minutes(tt.zone, tt.at); got != tt.want {
				t.Errorf("Minutes(%q, %v) = %d, want %d", tt.zone, tt.at, got, tt.want)
			}
		})
	}
}

func TestMinutesFractionalOffsets(t *testing.T) {
	at := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
		want int
	}{
		{"india half hour", "Asia/Kolkata", 330},
		{"nepal 45 minutes", "Asia/Kathmandu", 345},
		{"newfoundland summer", "America/St_Johns", -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minutes(tt.zone, at); got != tt.want {
				t.Errorf("Minutes(%q) = %d, want %d", tt.zone, got, tt.want)
			}
		})
	}
}

func TestMinutesAcrossDSTBoundary(t *testing.T) {
	// New York springs forward at 2025-03-09T07:00:00Z.
	before := time.Date(2025, time.March, 9, 6, 59, 0, 0, time.UTC)
	if got := Minutes("America/New_York", before); got != -300 {
		t.Errorf("one minute before the jump: Minutes = %d, want -300", got)
	}
	after := before.Add(125 * time.Second)
	if got := Minutes("America/New_York", after); got != -240 {
		t.Errorf("just past the jump: Minutes = %d, want -240", got)
	}
}

func TestMinutesSubSecondJitter(t *testing.T) {
	// Sub-second components are invisible to the civil formatter; rounding
	// must absorb them.
	at := time.Date(2025, time.June, 15, 12, 0, 0, 987_654_321, time.UTC)
	if got := Minutes("Asia/Tokyo", at); got != 540 {
		t.Errorf("Minutes with nanoseconds = %d, want 540", got)
	}
}

func TestMinutesInvalidZoneDegradesToZero(t *testing.T) {
	at := time.Now()
	for _, zone := range []string{"", "Not/A_Zone", "New York"} {
		if got := Minutes(zone, at); got != 0 {
			t.Errorf("Minutes(%q) = %d, want 0 fallback", zone, got)
		}
	}
}

func TestLookupDistinguishesFailureFromZero(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	minutes, ok := lookup("Europe/London", at)
	if !ok || minutes != 0 {
		t.Errorf("lookup(Europe/London) = (%d, %v), want (0, true)", minutes, ok)
	}

	if _, ok := lookup("Not/A_Zone", at); ok {
		t.Error("lookup of invalid zone reported ok")
	}
}
