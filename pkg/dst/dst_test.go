package dst

import (
	"testing"
	"time"
)

func TestActiveNorthernHemisphere(t *testing.T) {
	winter := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	if Active("America/New_York", winter) {
		t.Error("New York reported DST in January")
	}
	if !Active("America/New_York", summer) {
		t.Error("New York did not report DST in July")
	}
	if Active("Europe/London", winter) {
		t.Error("London reported DST in January")
	}
	if !Active("Europe/London", summer) {
		t.Error("London did not report DST in July")
	}
}

func TestActiveSouthernHemisphere(t *testing.T) {
	// Inverted seasons: Sydney is on DST in its summer, which is January.
	january := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	if !Active("Australia/Sydney", january) {
		t.Error("Sydney did not report DST in January")
	}
	if Active("Australia/Sydney", july) {
		t.Error("Sydney reported DST in July")
	}
}

func TestActiveZonesWithoutDST(t *testing.T) {
	zones := []string{"Asia/Tokyo", "Asia/Singapore", "Asia/Dubai", "Asia/Kolkata", "UTC"}
	instants := []time.Time{
		time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC),
	}
	for _, zone := range zones {
		for _, at := range instants {
			if Active(zone, at) {
				t.Errorf("Active(%q, %v) = true for a zone without DST", zone, at)
			}
		}
	}
}

func TestActiveInvalidZone(t *testing.T) {
	if Active("Not/A_Zone", time.Now()) {
		t.Error("invalid zone reported DST active")
	}
}

func TestTransitionsNewYork2025(t *testing.T) {
	transitions := Transitions("America/New_York", 2025)
	if len(transitions) != 2 {
		t.Fatalf("got %d transitions, want 2: %v", len(transitions), transitions)
	}

	spring := transitions[0].UTC()
	if spring.Month() != time.March || spring.Day() < 9 || spring.Day() > 10 {
		t.Errorf("spring transition = %v, want March 9-10", spring)
	}
	if !spring.Equal(time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("spring transition = %v, want 2025-03-09T07:00:00Z", spring)
	}

	fall := transitions[1].UTC()
	if fall.Month() != time.November || fall.Day() < 2 || fall.Day() > 3 {
		t.Errorf("fall transition = %v, want November 2-3", fall)
	}
	if !spring.Before(fall) {
		t.Error("transitions out of chronological order")
	}
}

func TestTransitionsSydney2025(t *testing.T) {
	// Southern hemisphere: DST ends in April and begins in October.
	transitions := Transitions("Australia/Sydney", 2025)
	if len(transitions) != 2 {
		t.Fatalf("got %d transitions, want 2: %v", len(transitions), transitions)
	}
	if got := transitions[0].UTC().Month(); got != time.April {
		t.Errorf("first transition in %v, want April", got)
	}
	if got := transitions[1].UTC().Month(); got != time.October {
		t.Errorf("second transition in %v, want October", got)
	}
	if !transitions[0].Before(transitions[1]) {
		t.Error("transitions out of chronological order")
	}
}

func TestTransitionsZoneWithoutDST(t *testing.T) {
	for _, zone := range []string{"Asia/Tokyo", "Asia/Kolkata", "UTC"} {
		if got := Transitions(zone, 2025); len(got) != 0 {
			t.Errorf("Transitions(%q) = %v, want empty", zone, got)
		}
	}
}

func TestTransitionsInvalidZone(t *testing.T) {
	if got := Transitions("Not/A_Zone", 2025); len(got) != 0 {
		t.Errorf("Transitions of invalid zone = %v, want empty", got)
	}
}

func TestTransitionsMatchActiveFlips(t *testing.T) {
	// Just before and after each reported transition instant, Active must
	// disagree with itself.
	for _, zone := range []string{"America/New_York", "Europe/Paris", "Australia/Sydney"} {
		for _, tr := range Transitions(zone, 2025) {
			before := Active(zone, tr.Add(-2*time.Hour))
			after := Active(zone, tr.Add(2*time.Hour))
			if before == after {
				t.Errorf("%s: Active unchanged across transition %v", zone, tr)
			}
		}
	}
}

func TestInfo(t *testing.T) {
	at := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	info := Info("America/New_York", at)
	if !info.Valid {
		t.Fatal("New York reported invalid")
	}
	if info.CurrentOffset != -300 {
		t.Errorf("CurrentOffset = %d, want -300", info.CurrentOffset)
	}
	if !info.HasDST {
		t.Error("HasDST = false for New York")
	}
	if info.StandardOffset != -300 || info.DSTOffset != -240 {
		t.Errorf("standard/DST offsets = %d/%d, want -300/-240", info.StandardOffset, info.DSTOffset)
	}
	if info.Active {
		t.Error("DST active in January for New York")
	}
	if info.OffsetString != "GMT-5" {
		t.Errorf("OffsetString = %q, want GMT-5", info.OffsetString)
	}
	if info.FormattedTime != "07:00 AM" || info.FormattedDate != "Wed Jan 15" {
		t.Errorf("formatted time/date = %q/%q, want 07:00 AM / Wed Jan 15", info.FormattedTime, info.FormattedDate)
	}
}

func TestInfoInvalidZone(t *testing.T) {
	info := Info("Not/A_Zone", time.Now())
	if info.Valid {
		t.Fatal("invalid zone reported valid")
	}
	if info.OffsetString != "Invalid" {
		t.Errorf("OffsetString = %q, want Invalid", info.OffsetString)
	}
	if info.FormattedTime != "--:--" || info.FormattedDate != "---" {
		t.Errorf("placeholders = %q/%q, want --:--/---", info.FormattedTime, info.FormattedDate)
	}
	if info.CurrentOffset != 0 || info.Active || info.HasDST {
		t.Error("invalid zone leaked non-default offsets or DST state")
	}
}
