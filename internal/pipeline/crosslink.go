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

// Crosslinker runs the decor→texture pass: for products that already carry
// a decor image, the search key is derived from that image's file name
// rather than the product name, and matched against the texture library to
// populate texture_images. The two photo libraries were shot and named
// independently, so this second hop is what ties them together.
type Crosslinker struct {
	Repo    repos.ProductRepo
	Matcher *matching.Matcher
	Writer  *Writer
	Mapping *catalog.Mapping
	Library assets.Library // texture library
	Log     *logger.Logger
	DryRun  bool
	Limit   int
}

func (c *Crosslinker) Run(ctx context.Context) (Summary, error) {
	log := c.Log.With("pipeline", "crosslink")
	var summary Summary

	byDim, scanned := collectByDimension(assets.NewScanner(c.Library, c.Mapping), log)
	summary.Scanned = scanned
	log.Info("scan complete", "assets", scanned, "dimensions", len(byDim))

	products, err := c.Repo.List(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("list products: %w", err)
	}
	if c.Limit > 0 && len(products) > c.Limit {
		products = products[:c.Limit]
	}

	for _, p := range products {
		o := c.processOne(ctx, p, byDim)
		summary.add(o)
		if o.Status == StatusMatched && !c.DryRun {
			summary.Updated++
		}
		logOutcome(log, o)
	}
	return summary, nil
}

func (c *Crosslinker) processOne(ctx context.Context, p *domain.Product, byDim map[string][]domain.ImageAsset) Outcome {
	o := Outcome{ProductID: p.ID, Name: p.Name, Dimension: p.Dimension, Tier: domain.TierNone}

	if p.DecorImageURL == nil || *p.DecorImageURL == "" {
		o.Status = StatusSkipped
		o.Reason = ReasonNoDecorImage
		return o
	}
	if p.Dimension == "" || !c.Mapping.IsCanonical(p.Dimension) {
		o.Status = StatusSkipped
		o.Reason = ReasonNoDimension
		return o
	}

	query := normalization.Name(assets.FileName(*p.DecorImageURL))
	result := c.Matcher.Match(query, byDim[p.Dimension])
	o.Tier = result.Tier
	if result.Tier == domain.TierNone {
		o.Status = StatusSkipped
		o.Reason = ReasonNoMatch
		return o
	}

	if c.DryRun {
		o.Status = StatusMatched
		return o
	}
	if err := c.Writer.Apply(ctx, p.ID, result, domain.FieldTextureImages, c.Library); err != nil {
		o.Status = StatusFailed
		o.Err = err
		return o
	}
	o.Status = StatusMatched
	return o
}
