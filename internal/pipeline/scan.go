package pipeline

import (
	"github.com/arvetile/catalog-backend/internal/assets"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

// collectByDimension drains a scan into per-dimension candidate sets.
// Skipped folders are warnings, never failures: one mislabeled directory
// must not affect the others. Returns the candidate map and the number of
// assets scanned.
func collectByDimension(scanner *assets.Scanner, log *logger.Logger) (map[string][]domain.ImageAsset, int) {
	byDim := make(map[string][]domain.ImageAsset)
	scanned := 0
	for ev := range scanner.Scan() {
		if ev.Skip != nil {
			log.Warn("skipping folder", "folder", ev.Skip.Path, "reason", ev.Skip.Reason)
			continue
		}
		byDim[ev.Asset.Dimension] = append(byDim[ev.Asset.Dimension], *ev.Asset)
		scanned++
	}
	return byDim, scanned
}
