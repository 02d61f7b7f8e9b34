package catalog

import (
	"testing"

	"github.com/chronomap-dev/chronomap/pkg/civil"
)

func TestIDsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, e := range All() {
		if other, ok := seen[e.ID]; ok {
			t.Errorf("id %q used by both %q and %q", e.ID, other, e.Label)
		}
		seen[e.ID] = e.Label
	}
}

func TestEveryEntryIsValidZone(t *testing.T) {
	for _, e := range All() {
		if !civil.Valid(e.IANAName) {
			t.Errorf("catalog entry %q has invalid zone %q", e.Label, e.IANAName)
		}
	}
}

func TestAliasedZonesShareIANAName(t *testing.T) {
	// City aliasing is intentional: several cities map to one zone.
	byZone := make(map[string][]string)
	for _, e := range All() {
		byZone[e.IANAName] = append(byZone[e.IANAName], e.Label)
	}
	if len(byZone["America/New_York"]) < 2 {
		t.Errorf("expected multiple cities for America/New_York, got %v", byZone["America/New_York"])
	}
	if len(byZone["Asia/Kolkata"]) < 2 {
		t.Errorf("expected multiple cities for Asia/Kolkata, got %v", byZone["Asia/Kolkata"])
	}
}

func TestLabelForNeverFallsBackForCatalogZones(t *testing.T) {
	// Every catalog zone must resolve to some curated label, never to the
	// path-segment fallback.
	curated := make(map[string]map[string]bool)
	for _, e := range All() {
		if curated[e.IANAName] == nil {
			curated[e.IANAName] = make(map[string]bool)
		}
		curated[e.IANAName][e.Label] = true
	}
	for zone, labels := range curated {
		if got := LabelFor(zone); !labels[got] {
			t.Errorf("LabelFor(%q) = %q, not a curated label %v", zone, got, labels)
		}
	}
}

func TestLabelForFallback(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{"curated three-segment zone", "America/Argentina/Buenos_Aires", "Buenos Aires"},
		{"uncatalogued zone loses context", "America/Indiana/Knox", "Knox"},
		{"underscores become spaces", "America/Port_of_Spain", "Port of Spain"},
		{"no separator", "Zulu", "Zulu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelFor(tt.zone); got != tt.want {
				t.Errorf("LabelFor(%q) = %q, want %q", tt.zone, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLabel string
	}{
		{"by label", "york", "New York"},
		{"case insensitive", "TOKYO", "Tokyo"},
		{"by iana name", "kolkata", "Mumbai"},
		{"with whitespace", "  paris  ", "Paris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(tt.query)
			if len(results) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			found := false
			for _, e := range results {
				if e.Label == tt.wantLabel {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Search(%q) did not include %q", tt.query, tt.wantLabel)
			}
		})
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	if got, want := len(Search("")), len(All()); got != want {
		t.Errorf("Search(\"\") returned %d entries, want %d", got, want)
	}
}

func TestSearchNoMatches(t *testing.T) {
	if got := Search("zzzzzz"); len(got) != 0 {
		t.Errorf("Search(zzzzzz) = %v, want empty", got)
	}
}

func TestByID(t *testing.T) {
	e, ok := ByID("na-newyork")
	if !ok {
		t.Fatal("ByID(na-newyork) not found")
	}
	if e.IANAName != "America/New_York" {
		t.Errorf("ByID(na-newyork).IANAName = %q", e.IANAName)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID(nope) unexpectedly found")
	}
}
