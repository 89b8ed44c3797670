package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/arvetile/catalog-backend/internal/assets"
	"github.com/arvetile/catalog-backend/internal/data/repos"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

// Writer persists one match result into one image column. Writes fully
// replace the target field, so re-running a pass with the same inputs is a
// no-op in effect.
type Writer struct {
	repo    repos.ProductRepo
	log     *logger.Logger
	listCap int
}

func NewWriter(repo repos.ProductRepo, baseLog *logger.Logger, listCap int) *Writer {
	if listCap <= 0 {
		listCap = 20
	}
	return &Writer{repo: repo, log: baseLog.With("component", "Writer"), listCap: listCap}
}

// Apply writes the matched assets' URLs to the given field of one product.
// Single-valued fields take the first URL; list fields take a JSON-encoded
// ordered list, deduped and capped, in the matcher's determined order.
func (w *Writer) Apply(ctx context.Context, productID uuid.UUID, result domain.MatchResult, field domain.ImageField, lib assets.Library) error {
	urls := make([]string, 0, len(result.Assets))
	seen := make(map[string]bool, len(result.Assets))
	for _, a := range result.Assets {
		u := lib.URL(a.RelativePath)
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil
	}

	patch := make(map[string]any, 1)
	if field.Single() {
		patch[string(field)] = urls[0]
	} else {
		if len(urls) > w.listCap {
			urls = urls[:w.listCap]
		}
		encoded, err := json.Marshal(urls)
		if err != nil {
			return fmt.Errorf("encode %s: %w", field, err)
		}
		patch[string(field)] = datatypes.JSON(encoded)
	}
	return w.repo.UpdateImages(ctx, nil, productID, patch)
}
