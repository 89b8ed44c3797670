package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arvetile/catalog-backend/internal/catalog"
	"github.com/arvetile/catalog-backend/internal/domain"
)

func testMapping(t *testing.T) *catalog.Mapping {
	t.Helper()
	m, err := catalog.Parse([]byte(`
dimensions:
  "30 30": 30x30
  "30X90": 30x90
  "60X120": 60x120
surfaces:
  - contains: matt
    value: Matt
`))
	if err != nil {
		t.Fatalf("parse mapping: %v", err)
	}
	return m
}

func writeFile(t *testing.T, parts ...string) {
	t.Helper()
	path := filepath.Join(parts...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func drain(s *Scanner) (assets []domain.ImageAsset, skips []Skip) {
	for ev := range s.Scan() {
		if ev.Skip != nil {
			skips = append(skips, *ev.Skip)
			continue
		}
		assets = append(assets, *ev.Asset)
	}
	return assets, skips
}

func TestScanFlatLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "30 30", "ATEN DARK GRAY 1.jpg")
	writeFile(t, root, "30 30", "ATEN DARK GRAY 2.jpg")
	writeFile(t, root, "30 30", "notes.txt")
	writeFile(t, root, "SOME OLD STUFF", "x.jpg")

	s := NewScanner(Library{Root: root, PublicPrefix: "/DECORED", Layout: LayoutFlat}, testMapping(t))
	assets, skips := drain(s)

	if len(assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(assets))
	}
	for _, a := range assets {
		if a.Dimension != "30x30" {
			t.Fatalf("dimension = %q, want 30x30", a.Dimension)
		}
		if a.SurfaceFolder != "" {
			t.Fatalf("flat layout must not set surface folder, got %q", a.SurfaceFolder)
		}
		if a.NormalizedName != "ATEN DARK GRAY" {
			t.Fatalf("normalized = %q", a.NormalizedName)
		}
	}
	if assets[0].RelativePath != "30 30/ATEN DARK GRAY 1.jpg" {
		t.Fatalf("relative path = %q", assets[0].RelativePath)
	}
	if len(skips) != 1 || skips[0].Path != "SOME OLD STUFF" {
		t.Fatalf("skips = %+v", skips)
	}
}

func TestScanNestedLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "30X90", "Matt", "alvin2.jpg")
	writeFile(t, root, "30X90", "Matt", "readme.md")

	s := NewScanner(Library{Root: root, PublicPrefix: "/TEXTURES", Layout: LayoutNested}, testMapping(t))
	assets, _ := drain(s)

	if len(assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(assets))
	}
	a := assets[0]
	if a.Dimension != "30x90" || a.SurfaceFolder != "Matt" {
		t.Fatalf("asset = %+v", a)
	}
	if a.RelativePath != "30X90/Matt/alvin2.jpg" {
		t.Fatalf("relative path = %q", a.RelativePath)
	}
	if a.NormalizedName != "ALVIN2" {
		t.Fatalf("normalized = %q", a.NormalizedName)
	}
}

func TestScanMissingRoot(t *testing.T) {
	s := NewScanner(Library{Root: filepath.Join(t.TempDir(), "absent"), Layout: LayoutFlat}, testMapping(t))
	assets, skips := drain(s)
	if len(assets) != 0 || len(skips) != 0 {
		t.Fatalf("missing root must yield nothing, got %d assets %d skips", len(assets), len(skips))
	}
}

func TestScanRestartable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "30 30", "a.jpg")
	writeFile(t, root, "60X120", "b.png")

	s := NewScanner(Library{Root: root, Layout: LayoutFlat}, testMapping(t))
	first, _ := drain(s)
	second, _ := drain(s)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("scan counts = %d, %d; want 2, 2", len(first), len(second))
	}
	for i := range first {
		if first[i].RelativePath != second[i].RelativePath {
			t.Fatalf("rescans disagree at %d: %q vs %q", i, first[i].RelativePath, second[i].RelativePath)
		}
	}
}

func TestScanStopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "30 30", "a.jpg")
	writeFile(t, root, "30 30", "b.jpg")

	s := NewScanner(Library{Root: root, Layout: LayoutFlat}, testMapping(t))
	count := 0
	for range s.Scan() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
