// Package civil adapts the platform timezone database into the wall-clock
// primitive the rest of the engine is built on: given an IANA zone name and
// an instant, return the civil date/time components observers in that zone
// would read. It is also the single validity oracle for zone names.
package civil

import (
	"fmt"
	"sync"
	"time"
	// Guarantee a usable tz database even on hosts without /usr/share/zoneinfo.
	_ "time/tzdata"
)

// Components holds the wall-clock date/time fields of an instant in a zone,
// in 24-hour form.
type Components struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// locations memoizes LoadLocation results; the stdlib re-reads tzdata on
// every call.
var locations sync.Map // zone name -> *time.Location

func location(zone string) (*time.Location, error) {
	// LoadLocation treats "" as UTC and "Local" as the host zone; neither is
	// an IANA name, so both are rejected here.
	if zone == "" || zone == "Local" {
		return nil, fmt.Errorf("not an IANA zone name: %q", zone)
	}
	if cached, ok := locations.Load(zone); ok {
		loc, ok := cached.(*time.Location)
		if !ok {
			return nil, fmt.Errorf("unexpected cache entry for %q", zone)
		}
		return loc, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("loading zone %q: %w", zone, err)
	}
	locations.Store(zone, loc)
	return loc, nil
}

// Valid reports whether the timezone database accepts name as a zone.
// All offset and DST computations silently degrade on invalid zones, so
// user-supplied names must be checked here first.
func Valid(name string) bool {
	_, err := location(name)
	return err == nil
}

// Time returns the wall-clock components of at in zone. The error is
// non-nil only when the zone name is rejected by the timezone database.
func Time(zone string, at time.Time) (Components, error) {
	loc, err := location(zone)
	if err != nil {
		return Components{}, err
	}
	local := at.In(loc)
	year, month, day := local.Date()
	hour, minute, second := local.Clock()
	return Components{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, nil
}

// Instant constructs the instant corresponding to the given wall-clock hour
// in zone. Skipped clock times (spring-forward gaps) normalize to the first
// instant after the jump, which is exactly the transition instant the DST
// scanner wants.
func Instant(zone string, year int, month time.Month, day, hour int) (time.Time, error) {
	loc, err := location(zone)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, hour, 0, 0, 0, loc), nil
}

// Clock renders at as a 12-hour clock string in zone, e.g. "03:04 PM".
func Clock(zone string, at time.Time) (string, error) {
	loc, err := location(zone)
	if err != nil {
		return "", err
	}
	return at.In(loc).Format("03:04 PM"), nil
}

// Date renders at as a short weekday/month/day string in zone, e.g. "Mon Jan 2".
func Date(zone string, at time.Time) (string, error) {
	loc, err := location(zone)
	if err != nil {
		return "", err
	}
	return at.In(loc).Format("Mon Jan 2"), nil
}

// DateTime renders at as a combined date and 12-hour time string in zone,
// e.g. "Mon Jan 2, 03:04 PM".
func DateTime(zone string, at time.Time) (string, error) {
	loc, err := location(zone)
	if err != nil {
		return "", err
	}
	return at.In(loc).Format("Mon Jan 2, 03:04 PM"), nil
}

// DeviceZone returns the host's zone name, or "UTC" when the platform
// reports only the opaque "Local" placeholder.
func DeviceZone() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}
