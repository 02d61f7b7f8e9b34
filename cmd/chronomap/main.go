// Package main implements the chronomap CLI: world clock, timezone
// conversion, DST transition lookup and working-hours overlap planning.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/chronomap-dev/chronomap/pkg/catalog"
	"github.com/chronomap-dev/chronomap/pkg/civil"
	"github.com/chronomap-dev/chronomap/pkg/convert"
	"github.com/chronomap-dev/chronomap/pkg/dst"
	"github.com/chronomap-dev/chronomap/pkg/overlap"
	"github.com/chronomap-dev/chronomap/pkg/store"
	"github.com/chronomap-dev/chronomap/pkg/tzfmt"
)

var (
	atFlag    = flag.String("at", "", "Instant in RFC3339 form (default: now)")
	startFlag = flag.Float64("start", overlap.DefaultWorkStart, "Working hours start (fractional, 9.5 = 9:30)")
	endFlag   = flag.Float64("end", overlap.DefaultWorkEnd, "Working hours end")
	yearFlag  = flag.Int("year", 0, "Year for the transitions command (default: current)")
	dbPath    = flag.String("db", "", "Database path for saved zones (or set CHRONOMAP_DB)")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	version   = flag.Bool("version", false, "Show version")
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
	lateColor   = color.New(color.FgYellow)
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command> [args]

Commands:
  now [zone...]              World clock for the given (or saved) zones
  search <query>             Search the city catalog
  convert <zone...>          Convert -at instant into each zone
  overlap <zoneA> <zoneB>    Pairwise working-hours overlap
  meet <zone[@start-end]>... Multi-zone meeting overlap
  transitions <zone>         DST transition instants for -year
  info <zone>                Offset and DST details for a zone

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println("chronomap CLI v1.2.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *dbPath == "" {
		*dbPath = os.Getenv("CHRONOMAP_DB")
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "now":
		err = runNow(args[1:], logger)
	case "search":
		err = runSearch(args[1:])
	case "convert":
		err = runConvert(args[1:])
	case "overlap":
		err = runOverlap(args[1:])
	case "meet":
		err = runMeet(args[1:])
	case "transitions":
		err = runTransitions(args[1:])
	case "info":
		err = runInfo(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

// instant resolves the -at flag, defaulting to the current time.
func instant() (time.Time, error) {
	if *atFlag == "" {
		return time.Now(), nil
	}
	at, err := time.Parse(time.RFC3339, *atFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing -at: %w", err)
	}
	return at, nil
}

// zonesToShow prefers explicit args, then the saved list, then a default
// slice of the catalog.
func zonesToShow(args []string, logger *slog.Logger) []string {
	if len(args) > 0 {
		return args
	}
	if *dbPath != "" {
		st, err := store.Open(store.Config{Path: *dbPath}, logger)
		if err == nil {
			defer func() {
				if closeErr := st.Close(); closeErr != nil {
					logger.Debug("failed to close store", "error", closeErr)
				}
			}()
			if saved, err := st.SavedZones(); err == nil && len(saved) > 0 {
				return saved
			}
		} else {
			logger.Warn("could not open store, using defaults", "error", err)
		}
	}
	defaults := []string{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo", "Australia/Sydney"}
	return defaults
}

func runNow(args []string, logger *slog.Logger) error {
	headerColor.Println("🕐 World Clock")
	fmt.Println(strings.Repeat("─", 50))

	now := time.Now()
	for _, zone := range zonesToShow(args, logger) {
		if !civil.Valid(zone) {
			fmt.Printf("%-22s %s\n", zone, dimColor.Sprint("invalid zone"))
			continue
		}
		labelColor.Printf("%-22s", catalog.LabelFor(zone))
		fmt.Printf(" %s  %s  %s", tzfmt.ClockIn(zone, now), tzfmt.DateIn(zone, now), tzfmt.OffsetStringAt(zone, now))
		if dst.Active(zone, now) {
			dimColor.Print("  DST")
		}
		fmt.Println()
	}
	return nil
}

func runSearch(args []string) error {
	query := strings.Join(args, " ")
	matches := catalog.Search(query)
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, e := range matches {
		labelColor.Printf("%-22s", e.Label)
		fmt.Printf(" %-32s %s\n", e.IANAName, tzfmt.OffsetString(e.IANAName))
	}
	return nil
}

func runConvert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("convert requires at least one zone")
	}
	at, err := instant()
	if err != nil {
		return err
	}

	headerColor.Printf("🔁 %s\n", at.UTC().Format(time.RFC3339))
	fmt.Println(strings.Repeat("─", 50))
	for _, r := range convert.Across(at, args) {
		labelColor.Printf("%-22s", r.Label)
		fmt.Printf(" %s  %s", r.ConvertedTime, r.Offset)
		if r.IsDST {
			dimColor.Print("  DST")
		}
		fmt.Println()
	}
	return nil
}

func runOverlap(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("overlap requires exactly two zones")
	}
	zoneA, zoneB := args[0], args[1]

	win := overlap.Hours(zoneA, zoneB, *startFlag, *endFlag)
	if win == nil {
		fmt.Printf("No same-day overlap between %s and %s working %s–%s.\n",
			zoneA, zoneB, tzfmt.FormatHour(*startFlag), tzfmt.FormatHour(*endFlag))
		return nil
	}

	headerColor.Printf("🤝 %.2g hours of overlap\n", win.OverlapHours)
	fmt.Println(strings.Repeat("─", 50))
	labelColor.Printf("%-22s", catalog.LabelFor(zoneA))
	fmt.Printf(" %s – %s\n", tzfmt.FormatHour(win.AStart), tzfmt.FormatHour(win.AEnd))
	labelColor.Printf("%-22s", catalog.LabelFor(zoneB))
	fmt.Printf(" %s – %s\n", tzfmt.FormatHour(win.BStart), tzfmt.FormatHour(win.BEnd))
	return nil
}

// parseParticipant turns "Asia/Tokyo@8.5-17" into a Participant; hours
// default to the -start/-end flags.
func parseParticipant(spec string, index int) (overlap.Participant, error) {
	zone := spec
	hours := overlap.WorkingHours{Start: *startFlag, End: *endFlag}

	if at := strings.LastIndex(spec, "@"); at >= 0 {
		zone = spec[:at]
		lo, hi, ok := strings.Cut(spec[at+1:], "-")
		if !ok {
			return overlap.Participant{}, fmt.Errorf("bad working-hours spec %q (want start-end)", spec)
		}
		start, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return overlap.Participant{}, fmt.Errorf("bad start hour in %q: %w", spec, err)
		}
		end, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return overlap.Participant{}, fmt.Errorf("bad end hour in %q: %w", spec, err)
		}
		hours = overlap.WorkingHours{Start: start, End: end}
	}

	if !civil.Valid(zone) {
		return overlap.Participant{}, fmt.Errorf("invalid zone %q", zone)
	}
	return overlap.Participant{
		ID:           fmt.Sprintf("p%d", index+1),
		Type:         overlap.TypeTimezone,
		Timezone:     zone,
		Label:        catalog.LabelFor(zone),
		WorkingHours: hours,
	}, nil
}

func runMeet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("meet requires at least two zone specs")
	}

	participants := make([]overlap.Participant, 0, len(args))
	for i, spec := range args {
		p, err := parseParticipant(spec, i)
		if err != nil {
			return err
		}
		participants = append(participants, p)
	}

	result := overlap.MultiZone(participants)
	if !result.HasOverlap {
		fmt.Println("No common working hours across all participants.")
		return nil
	}

	unit := "hours"
	if result.OverlapHours == 1 {
		unit = "hour"
	}
	headerColor.Printf("🤝 %g %s of common time\n", result.OverlapHours, unit)
	fmt.Println(strings.Repeat("─", 50))
	for _, pt := range result.ParticipantTimes {
		labelColor.Printf("%-22s", pt.Label)
		fmt.Printf(" %s – %s", pt.StartTime, pt.EndTime)
		if pt.IsLateHours {
			lateColor.Print("  🌙 late hours")
		}
		fmt.Println()
	}
	return nil
}

func runTransitions(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("transitions requires exactly one zone")
	}
	zone := args[0]
	if !civil.Valid(zone) {
		return fmt.Errorf("invalid zone %q", zone)
	}

	year := *yearFlag
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	transitions := dst.Transitions(zone, year)
	if len(transitions) == 0 {
		fmt.Printf("%s observes no DST in %d.\n", zone, year)
		return nil
	}

	headerColor.Printf("🔀 DST transitions for %s in %d\n", zone, year)
	fmt.Println(strings.Repeat("─", 50))
	for _, t := range transitions {
		fmt.Printf("%s  (%s local)\n", t.UTC().Format(time.RFC3339), tzfmt.DateTimeIn(zone, t))
	}
	return nil
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info requires exactly one zone")
	}
	info := dst.Info(args[0], time.Now())

	headerColor.Printf("🌍 %s\n", info.IANAName)
	fmt.Println(strings.Repeat("─", 50))
	if !info.Valid {
		fmt.Println("Not a valid IANA zone name.")
		return nil
	}
	fmt.Printf("Label:           %s\n", catalog.LabelFor(info.IANAName))
	fmt.Printf("Local time:      %s %s\n", info.FormattedTime, info.FormattedDate)
	fmt.Printf("Offset:          %s (%d minutes)\n", info.OffsetString, info.CurrentOffset)
	if info.HasDST {
		state := "inactive"
		if info.Active {
			state = "active"
		}
		fmt.Printf("DST:             %s (standard %d min, DST %d min)\n", state, info.StandardOffset, info.DSTOffset)
	} else {
		fmt.Println("DST:             not observed")
	}
	return nil
}
