package catalog

import "testing"

var canonicalCodes = map[string]bool{
	"30x30": true, "30x90": true, "40x40": true, "40x100": true,
	"60x60": true, "60x120": true, "80x80": true, "100x100": true,
}

func defaultMapping(t *testing.T) *Mapping {
	t.Helper()
	t.Setenv(mappingEnv, "")
	m, err := Load(nil)
	if err != nil {
		t.Fatalf("load embedded mapping: %v", err)
	}
	return m
}

func TestDimensionTableTotality(t *testing.T) {
	m := defaultMapping(t)
	if len(m.Dimensions) == 0 {
		t.Fatal("empty dimension table")
	}
	for spelling := range m.Dimensions {
		code, ok := m.Dimension(spelling)
		if !ok {
			t.Fatalf("spelling %q not resolved", spelling)
		}
		if !canonicalCodes[code] {
			t.Fatalf("spelling %q maps to %q, outside the canonical set", spelling, code)
		}
	}
	for _, spelling := range []string{"30 30", "60X120", "100 100"} {
		if _, ok := m.Dimension(spelling); !ok {
			t.Fatalf("expected observed spelling %q in table", spelling)
		}
	}
}

func TestDimensionUnrecognized(t *testing.T) {
	m := defaultMapping(t)
	if code, ok := m.Dimension("45 90"); ok {
		t.Fatalf("unexpected mapping for 45 90: %q", code)
	}
	if m.IsCanonical("45x90") {
		t.Fatal("45x90 must not be canonical")
	}
}

func TestSurfaceRules(t *testing.T) {
	m := defaultMapping(t)
	cases := []struct {
		folder string
		want   string
		ok     bool
	}{
		{"Matt", "Matt", true},
		{"MATT FLOOR", "Matt", true},
		{"Trans", "Trans", true},
		{"Transparent", "Trans", true},
		{"Polished", "Polished", true},
		{"Glossy", "Polished", true},
		{"", "Matt", false},
		{"Weird", "Matt", false},
	}
	for _, tc := range cases {
		got, ok := m.Surface(tc.folder)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Surface(%q) = (%q, %v), want (%q, %v)", tc.folder, got, ok, tc.want, tc.ok)
		}
	}
}

func TestColorFirstMatchWins(t *testing.T) {
	m, err := Parse([]byte(`
dimensions:
  "30 30": 30x30
colors:
  - keyword: DARK
    value: Dark
  - keyword: GRAY
    value: Grey
color_default: Natural
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// both rules apply; the first listed wins
	if got := m.Color("ATEN DARK GRAY"); got != "Dark" {
		t.Fatalf("Color = %q, want Dark", got)
	}
	if got := m.Color("ATEN"); got != "Natural" {
		t.Fatalf("Color default = %q, want Natural", got)
	}
}

func TestParseSubstitutedTables(t *testing.T) {
	m, err := Parse([]byte(`
dimensions:
  "15 15": 15x15
surfaces:
  - contains: satin
    value: Satin
surface_default: Raw
fallback_cap: 5
list_cap: 7
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if code, ok := m.Dimension("15 15"); !ok || code != "15x15" {
		t.Fatalf("Dimension = (%q, %v)", code, ok)
	}
	if !m.IsCanonical("15x15") {
		t.Fatal("substituted code must be canonical for this mapping")
	}
	if got, ok := m.Surface("SATIN TOP"); !ok || got != "Satin" {
		t.Fatalf("Surface = (%q, %v)", got, ok)
	}
	if got, _ := m.Surface("unknown"); got != "Raw" {
		t.Fatalf("Surface default = %q, want Raw", got)
	}
	if m.FallbackCap != 5 || m.ListCap != 7 {
		t.Fatalf("caps = (%d, %d), want (5, 7)", m.FallbackCap, m.ListCap)
	}
}

func TestParseRejectsEmptyDimensionTable(t *testing.T) {
	if _, err := Parse([]byte(`colors: []`)); err == nil {
		t.Fatal("expected error for missing dimension table")
	}
}
