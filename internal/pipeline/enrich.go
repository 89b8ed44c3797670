package pipeline

import (
	"context"
	"fmt"

	"github.com/arvetile/catalog-backend/internal/assets"
	"github.com/arvetile/catalog-backend/internal/catalog"
	"github.com/arvetile/catalog-backend/internal/data/repos"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/matching"
	"github.com/arvetile/catalog-backend/internal/normalization"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

// Enricher runs the enrich-existing pass: match one image library against
// the current catalog rows and write the results into a single target field.
type Enricher struct {
	Repo    repos.ProductRepo
	Matcher *matching.Matcher
	Writer  *Writer
	Mapping *catalog.Mapping
	Library assets.Library
	Field   domain.ImageField
	Log     *logger.Logger
	DryRun  bool
	Limit   int
}

func (e *Enricher) Run(ctx context.Context) (Summary, error) {
	log := e.Log.With("pipeline", "enrich", "field", string(e.Field))
	var summary Summary

	byDim, scanned := collectByDimension(assets.NewScanner(e.Library, e.Mapping), log)
	summary.Scanned = scanned
	log.Info("scan complete", "assets", scanned, "dimensions", len(byDim))

	products, err := e.Repo.List(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("list products: %w", err)
	}
	if e.Limit > 0 && len(products) > e.Limit {
		products = products[:e.Limit]
	}

	for _, p := range products {
		o := e.processOne(ctx, p, byDim)
		summary.add(o)
		if o.Status == StatusMatched && !e.DryRun {
			summary.Updated++
		}
		logOutcome(log, o)
	}
	return summary, nil
}

func (e *Enricher) processOne(ctx context.Context, p *domain.Product, byDim map[string][]domain.ImageAsset) Outcome {
	o := Outcome{ProductID: p.ID, Name: p.Name, Dimension: p.Dimension, Tier: domain.TierNone}

	if p.Dimension == "" || !e.Mapping.IsCanonical(p.Dimension) {
		o.Status = StatusSkipped
		o.Reason = ReasonNoDimension
		return o
	}

	result := e.Matcher.Match(normalization.Name(p.Name), byDim[p.Dimension])
	o.Tier = result.Tier
	if result.Tier == domain.TierNone {
		o.Status = StatusSkipped
		o.Reason = ReasonNoMatch
		return o
	}

	if e.DryRun {
		o.Status = StatusMatched
		return o
	}
	if err := e.Writer.Apply(ctx, p.ID, result, e.Field, e.Library); err != nil {
		o.Status = StatusFailed
		o.Err = err
		return o
	}
	o.Status = StatusMatched
	return o
}
