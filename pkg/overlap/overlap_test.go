package overlap

import (
	"math"
	"testing"
)

const epsilon = 0.001

// Tokyo and Kolkata observe no DST, so their 3.5 hour gap makes these
// cases deterministic year-round.

func TestHoursTokyoKolkata(t *testing.T) {
	win := Hours("Asia/Tokyo", "Asia/Kolkata", 9, 18)
	if win == nil {
		t.Fatal("expected overlap between Tokyo and Kolkata, got nil")
	}

	if math.Abs(win.AStart-12.5) > epsilon || math.Abs(win.AEnd-18) > epsilon {
		t.Errorf("Tokyo window = %v-%v, want 12.5-18", win.AStart, win.AEnd)
	}
	if math.Abs(win.BStart-9) > epsilon || math.Abs(win.BEnd-14.5) > epsilon {
		t.Errorf("Kolkata window = %v-%v, want 9-14.5", win.BStart, win.BEnd)
	}
	if math.Abs(win.OverlapHours-5.5) > epsilon {
		t.Errorf("OverlapHours = %v, want 5.5", win.OverlapHours)
	}
}

func TestHoursSymmetry(t *testing.T) {
	ab := Hours("Asia/Tokyo", "Asia/Kolkata", 9, 18)
	ba := Hours("Asia/Kolkata", "Asia/Tokyo", 9, 18)
	if ab == nil || ba == nil {
		t.Fatal("expected overlap in both directions")
	}

	// Same wall-clock intersection, each expressed in its own frame.
	if math.Abs(ab.AStart-ba.BStart) > epsilon || math.Abs(ab.AEnd-ba.BEnd) > epsilon {
		t.Errorf("A-frame windows disagree: %v-%v vs %v-%v", ab.AStart, ab.AEnd, ba.BStart, ba.BEnd)
	}
	if math.Abs(ab.BStart-ba.AStart) > epsilon || math.Abs(ab.BEnd-ba.AEnd) > epsilon {
		t.Errorf("B-frame windows disagree: %v-%v vs %v-%v", ab.BStart, ab.BEnd, ba.AStart, ba.AEnd)
	}
	if math.Abs(ab.OverlapHours-ba.OverlapHours) > epsilon {
		t.Errorf("overlap hours disagree: %v vs %v", ab.OverlapHours, ba.OverlapHours)
	}
}

func TestHoursNoOverlap(t *testing.T) {
	// Tokyo and Los Angeles are 16-17 hours apart; a 9-18 day never
	// intersects on the same calendar day.
	if win := Hours("Asia/Tokyo", "America/Los_Angeles", 9, 18); win != nil {
		t.Errorf("expected nil for Tokyo/Los Angeles, got %+v", win)
	}
}

func TestHoursZeroLengthIsNil(t *testing.T) {
	// Tokyo is exactly 9 hours ahead of UTC, so 9-18 days touch at a
	// single point. Exactly touching windows are no overlap, not a
	// zero-length result.
	if win := Hours("Asia/Tokyo", "UTC", 9, 18); win != nil {
		t.Errorf("expected nil for touching windows, got %+v", win)
	}
}

func TestHoursSameZone(t *testing.T) {
	win := Hours("Asia/Tokyo", "Asia/Tokyo", 9, 18)
	if win == nil {
		t.Fatal("expected full overlap for identical zones")
	}
	if math.Abs(win.OverlapHours-9) > epsilon {
		t.Errorf("OverlapHours = %v, want 9", win.OverlapHours)
	}
}
