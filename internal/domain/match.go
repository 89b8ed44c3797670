package domain

// MatchTier identifies which strategy produced a match. Diagnostic only,
// never persisted.
type MatchTier string

const (
	TierExact          MatchTier = "exact"
	TierSubstring      MatchTier = "substring"
	TierTokenPrefix    MatchTier = "token-prefix"
	TierFolderFallback MatchTier = "folder-fallback"
	TierNone           MatchTier = "none"
)

// MatchResult is the matcher's answer for one product against one candidate
// set. Assets come from a single tier; TierNone implies an empty set.
type MatchResult struct {
	Assets []ImageAsset
	Tier   MatchTier
}
