// Package matching decides which scanned images belong to a catalog product.
// It is pure computation: the caller supplies an already-normalized query
// and the candidate set for the product's dimension.
package matching

import (
	"slices"
	"strings"

	"github.com/arvetile/catalog-backend/internal/domain"
)

// Matcher runs the ordered matching strategies. The first strategy with a
// non-empty result wins; tiers never merge.
type Matcher struct {
	// FallbackCap bounds the folder-level last-resort tier.
	FallbackCap int
}

func New(fallbackCap int) *Matcher {
	if fallbackCap <= 0 {
		fallbackCap = 3
	}
	return &Matcher{FallbackCap: fallbackCap}
}

// Match resolves query against candidates. The query must already be in
// normalized form; the matcher does no case folding of its own. Candidates
// are the assets scanned for the product's dimension; an empty set means
// the dimension has no folder on disk and the result is TierNone no matter
// the name.
func (m *Matcher) Match(query string, candidates []domain.ImageAsset) domain.MatchResult {
	if len(candidates) == 0 {
		return domain.MatchResult{Tier: domain.TierNone}
	}
	if hits := Exact(query, candidates); len(hits) > 0 {
		return domain.MatchResult{Assets: hits, Tier: domain.TierExact}
	}
	if hits := Substring(query, candidates); len(hits) > 0 {
		return domain.MatchResult{Assets: hits, Tier: domain.TierSubstring}
	}
	if hits := TokenPrefix(query, candidates); len(hits) > 0 {
		return domain.MatchResult{Assets: hits, Tier: domain.TierTokenPrefix}
	}
	hits := sortByFileName(candidates)
	if len(hits) > m.FallbackCap {
		hits = hits[:m.FallbackCap]
	}
	return domain.MatchResult{Assets: hits, Tier: domain.TierFolderFallback}
}

// Exact collects candidates whose normalized name equals the query, the
// usual case being numbered variants of one product collapsing to the same
// name.
func Exact(query string, candidates []domain.ImageAsset) []domain.ImageAsset {
	return collect(query, candidates, func(q string, a domain.ImageAsset) bool {
		return a.NormalizedName == q
	})
}

// Substring collects candidates where the asset name contains the query, or
// the query contains the asset's first token. The second direction is
// deliberately asymmetric: texture file names sometimes embed the product
// name as a prefix of a longer label, and product names sometimes are
// themselves prefixes of a richer file name. Tuned against the existing
// libraries; do not generalize.
func Substring(query string, candidates []domain.ImageAsset) []domain.ImageAsset {
	return collect(query, candidates, func(q string, a domain.ImageAsset) bool {
		return strings.Contains(a.NormalizedName, q) ||
			strings.Contains(q, firstToken(a.NormalizedName))
	})
}

// TokenPrefix collects candidates whose first token equals the query's first
// token, for products whose defining name is a single word.
func TokenPrefix(query string, candidates []domain.ImageAsset) []domain.ImageAsset {
	prefix := firstToken(query)
	if prefix == "" {
		return nil
	}
	return collect(query, candidates, func(q string, a domain.ImageAsset) bool {
		return firstToken(a.NormalizedName) == prefix
	})
}

func collect(query string, candidates []domain.ImageAsset, pred func(string, domain.ImageAsset) bool) []domain.ImageAsset {
	if query == "" {
		return nil
	}
	var hits []domain.ImageAsset
	for _, a := range candidates {
		if a.NormalizedName == "" {
			continue
		}
		if pred(query, a) {
			hits = append(hits, a)
		}
	}
	return sortByFileName(hits)
}

func sortByFileName(assets []domain.ImageAsset) []domain.ImageAsset {
	if len(assets) == 0 {
		return nil
	}
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b domain.ImageAsset) int {
		return Compare(a.RawFileName, b.RawFileName)
	})
	return out
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
