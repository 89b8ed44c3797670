package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arvetile/catalog-backend/internal/assets"
	"github.com/arvetile/catalog-backend/internal/catalog"
	"github.com/arvetile/catalog-backend/internal/data/repos"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/normalization"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

// Seeder builds a catalog from scratch out of the decor library: one row per
// discovered file, slug from the numbered file name so rows stay unique,
// display name from the unnumbered form, color and surface from the keyword
// tables. Existing rows are only removed when Reset is set.
type Seeder struct {
	Repo    repos.ProductRepo
	Mapping *catalog.Mapping
	Library assets.Library // decor library
	Log     *logger.Logger
	Reset   bool
	DryRun  bool
	Limit   int
}

func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	log := s.Log.With("pipeline", "seed")
	var summary Summary

	if s.Reset && !s.DryRun {
		if err := s.Repo.DeleteAll(ctx, nil); err != nil {
			return summary, fmt.Errorf("reset catalog: %w", err)
		}
		log.Info("catalog cleared")
	}

	seen := make(map[string]bool)
	for ev := range assets.NewScanner(s.Library, s.Mapping).Scan() {
		if ev.Skip != nil {
			log.Warn("skipping folder", "folder", ev.Skip.Path, "reason", ev.Skip.Reason)
			continue
		}
		summary.Scanned++
		if s.Limit > 0 && summary.Scanned > s.Limit {
			break
		}

		o := s.seedOne(ctx, *ev.Asset, seen)
		summary.add(o)
		if o.Status == StatusMatched && !s.DryRun {
			summary.Updated++
		}
		logOutcome(log, o)
	}
	return summary, nil
}

func (s *Seeder) seedOne(ctx context.Context, asset domain.ImageAsset, seen map[string]bool) Outcome {
	name := normalization.Name(asset.RawFileName)
	o := Outcome{Name: name, Dimension: asset.Dimension, Tier: domain.TierExact}

	if name == "" {
		o.Status = StatusSkipped
		o.Reason = ReasonEmptyName
		return o
	}
	slug := normalization.Slug(asset.RawFileName)
	if seen[slug] {
		o.Status = StatusSkipped
		o.Reason = ReasonDuplicateSlug
		return o
	}
	seen[slug] = true

	surface, _ := s.Mapping.Surface(asset.SurfaceFolder)
	decorURL := s.Library.URL(asset.RelativePath)
	product := &domain.Product{
		ID:            uuid.New(),
		Slug:          slug,
		Name:          name,
		Dimension:     asset.Dimension,
		Surface:       surface,
		Color:         s.Mapping.Color(name),
		DecorImageURL: &decorURL,
	}
	o.ProductID = product.ID

	if s.DryRun {
		o.Status = StatusMatched
		return o
	}
	if _, err := s.Repo.Create(ctx, nil, []*domain.Product{product}); err != nil {
		o.Status = StatusFailed
		o.Err = err
		return o
	}
	o.Status = StatusMatched
	return o
}
