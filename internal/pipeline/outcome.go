// Package pipeline composes scan, normalize, match and persist into the
// three batch passes that keep the catalog's image references in sync with
// the photo libraries.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

type Status string

const (
	StatusMatched Status = "matched"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Skip reasons. ReasonNoMatch is counted separately in the summary because
// operators audit unmatched products after every run.
const (
	ReasonNoMatch       = "no matching images"
	ReasonNoDimension   = "missing or unknown dimension"
	ReasonNoDecorImage  = "no decor image to derive a key from"
	ReasonDuplicateSlug = "duplicate slug within this run"
	ReasonEmptyName     = "file name reduces to nothing"
)

// Outcome is the typed result of processing one catalog row (or, for the
// seeding pass, one discovered file). Orchestrators aggregate outcomes; the
// caller decides what to log.
type Outcome struct {
	ProductID uuid.UUID
	Name      string
	Dimension string
	Status    Status
	Tier      domain.MatchTier
	Reason    string
	Err       error
}

// Summary is the per-run audit counts printed when a pass finishes.
type Summary struct {
	Scanned   int
	Matched   int
	Unmatched int
	Updated   int
	Skipped   int
	Errored   int
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusMatched:
		s.Matched++
	case StatusSkipped:
		// Rows the matcher could not place, whether their dimension is
		// unknown or simply nothing matched, all land in the not-found
		// bucket operators audit after a run.
		if o.Reason == ReasonNoMatch || o.Reason == ReasonNoDimension {
			s.Unmatched++
		} else {
			s.Skipped++
		}
	case StatusFailed:
		s.Errored++
	}
}

// logOutcome writes the one audit line per processed row.
func logOutcome(log *logger.Logger, o Outcome) {
	switch o.Status {
	case StatusMatched:
		log.Info("product matched", "name", o.Name, "dimension", o.Dimension, "tier", o.Tier)
	case StatusSkipped:
		log.Info("product skipped", "name", o.Name, "dimension", o.Dimension, "reason", o.Reason)
	case StatusFailed:
		log.Error("product update failed", "name", o.Name, "dimension", o.Dimension, "error", o.Err)
	}
}
