// Package assets walks the two image library trees and turns files into
// ImageAssets plus the public URLs the catalog stores for them.
package assets

import (
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arvetile/catalog-backend/internal/catalog"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/normalization"
)

// Layout selects one of the two fixed library shapes.
type Layout int

const (
	// LayoutFlat is <dimension folder>/<file> (decor library).
	LayoutFlat Layout = iota
	// LayoutNested is <dimension folder>/<surface folder>/<file> (texture
	// library).
	LayoutNested
)

// Library describes one image tree: where it lives on disk and under which
// prefix a static-file server exposes it.
type Library struct {
	Root         string
	PublicPrefix string
	Layout       Layout
}

// Skip records a directory entry the scan could not place.
type Skip struct {
	Path   string
	Reason string
}

// Event is one typed scan outcome: either a discovered asset or a skipped
// folder. Exactly one of the two fields is set.
type Event struct {
	Asset *domain.ImageAsset
	Skip  *Skip
}

type Scanner struct {
	lib     Library
	mapping *catalog.Mapping
}

func NewScanner(lib Library, mapping *catalog.Mapping) *Scanner {
	return &Scanner{lib: lib, mapping: mapping}
}

// Scan lazily enumerates the library. The sequence is finite, deterministic
// for an unchanged filesystem, and restartable; a missing root yields zero
// events because the two libraries are independently optional.
func (s *Scanner) Scan() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		entries, err := os.ReadDir(s.lib.Root)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dim, ok := s.mapping.Dimension(entry.Name())
			if !ok {
				if !yield(Event{Skip: &Skip{Path: entry.Name(), Reason: "unrecognized dimension folder"}}) {
					return
				}
				continue
			}
			switch s.lib.Layout {
			case LayoutFlat:
				if !s.emitFiles(yield, dim, "", entry.Name()) {
					return
				}
			case LayoutNested:
				if !s.emitSurfaces(yield, dim, entry.Name()) {
					return
				}
			}
		}
	}
}

func (s *Scanner) emitSurfaces(yield func(Event) bool, dim, dimFolder string) bool {
	entries, err := os.ReadDir(filepath.Join(s.lib.Root, dimFolder))
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !s.emitFiles(yield, dim, entry.Name(), dimFolder, entry.Name()) {
			return false
		}
	}
	return true
}

func (s *Scanner) emitFiles(yield func(Event) bool, dim, surfaceFolder string, folders ...string) bool {
	dir := filepath.Join(append([]string{s.lib.Root}, folders...)...)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		asset := domain.ImageAsset{
			RelativePath:   path.Join(append(append([]string{}, folders...), entry.Name())...),
			RawFileName:    entry.Name(),
			Dimension:      dim,
			SurfaceFolder:  surfaceFolder,
			NormalizedName: normalization.Name(entry.Name()),
		}
		if !yield(Event{Asset: &asset}) {
			return false
		}
	}
	return true
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
