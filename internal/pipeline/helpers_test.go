package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arvetile/catalog-backend/internal/catalog"
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
  - contains: trans
    value: Trans
colors:
  - keyword: WHITE
    value: White
  - keyword: GRAY
    value: Grey
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

func decodeList(t *testing.T, raw []byte) []string {
	t.Helper()
	if len(raw) == 0 {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		t.Fatalf("decode image list %q: %v", raw, err)
	}
	return urls
}
