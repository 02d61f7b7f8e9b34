package civil

import (
	"testing"
	"time"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want bool
	}{
		{"new york", "America/New_York", true},
		{"london", "Europe/London", true},
		{"tokyo", "Asia/Tokyo", true},
		{"utc", "UTC", true},
		{"sydney", "Australia/Sydney", true},
		{"three-segment name", "America/Argentina/Buenos_Aires", true},
		{"empty string", "", false},
		{"local placeholder", "Local", false},
		{"free text city", "New York", false},
		{"made-up zone", "Invalid/Timezone", false},
		{"made-up city", "America/Invalid_City", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.zone); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.zone, got, tt.want)
			}
		})
	}
}

func TestTime(t *testing.T) {
	// 2025-01-15T12:00:00Z is 21:00 the same day in Tokyo.
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	c, err := Time("Asia/Tokyo", at)
	if err != nil {
		t.Fatalf("Time returned error: %v", err)
	}
	want := Components{Year: 2025, Month: 1, Day: 15, Hour: 21}
	if c != want {
		t.Errorf("Time(Asia/Tokyo) = %+v, want %+v", c, want)
	}
}

func TestTimeCrossesDateLine(t *testing.T) {
	// 2025-01-15T20:00:00Z is already January 16 in Auckland (UTC+13).
	at := time.Date(2025, time.January, 15, 20, 0, 0, 0, time.UTC)

	c, err := Time("Pacific/Auckland", at)
	if err != nil {
		t.Fatalf("Time returned error: %v", err)
	}
	if c.Day != 16 || c.Hour != 9 {
		t.Errorf("Time(Pacific/Auckland) = %+v, want day 16 hour 9", c)
	}
}

func TestTimeInvalidZone(t *testing.T) {
	if _, err := Time("Not/A_Zone", time.Now()); err == nil {
		t.Error("expected error for invalid zone")
	}
}

func TestInstantNormalizesSkippedHour(t *testing.T) {
	// 02:00 on 2025-03-09 does not exist in New York; construction lands on
	// the first instant after the spring-forward jump.
	at, err := Instant("America/New_York", 2025, time.March, 9, 2)
	if err != nil {
		t.Fatalf("Instant returned error: %v", err)
	}
	if got := at.UTC(); !got.Equal(time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("Instant normalized to %v, want 2025-03-09T07:00:00Z", got)
	}
}

func TestFormatting(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	clock, err := Clock("Asia/Tokyo", at)
	if err != nil {
		t.Fatalf("Clock returned error: %v", err)
	}
	if clock != "09:00 PM" {
		t.Errorf("Clock = %q, want \"09:00 PM\"", clock)
	}

	date, err := Date("UTC", at)
	if err != nil {
		t.Fatalf("Date returned error: %v", err)
	}
	if date != "Wed Jan 15" {
		t.Errorf("Date = %q, want \"Wed Jan 15\"", date)
	}

	dateTime, err := DateTime("Asia/Tokyo", at)
	if err != nil {
		t.Fatalf("DateTime returned error: %v", err)
	}
	if dateTime != "Wed Jan 15, 09:00 PM" {
		t.Errorf("DateTime = %q, want \"Wed Jan 15, 09:00 PM\"", dateTime)
	}
}

func TestDeviceZone(t *testing.T) {
	zone := DeviceZone()
	if zone == "" || zone == "Local" {
		t.Errorf("DeviceZone() = %q, want a concrete zone name", zone)
	}
}
