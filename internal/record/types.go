package record

import (
	"github.com/dshills/diffrec/internal/diffparse"
	"github.com/dshills/diffrec/internal/heuristics"
)

// Default display names used when the caller supplies none.
const (
	DefaultLeftName  = "left.txt"
	DefaultRightName = "right.txt"
)

// Source labels the two sides of a comparison.
type Source struct {
	LeftName  string `json:"left_name"`
	RightName string `json:"right_name"`
}

// Stats holds line counts and similarity metrics for a comparison.
// Similarity ratios are rounded to 4 decimal places; the percent
// estimate is derived from the character similarity and rounded to 2.
type Stats struct {
	LinesLeft                int     `json:"lines_left"`
	LinesRight               int     `json:"lines_right"`
	CharSimilarity           float64 `json:"char_similarity"`
	LineSimilarity           float64 `json:"line_similarity"`
	TokenJaccard             float64 `json:"token_jaccard"`
	PercentDifferentEstimate float64 `json:"percent_different_estimate"`
}

// ChangeRecord is the unit of output: one comparison, serialized as a
// single JSON object. Records are constructed once and never mutated;
// their only destiny is serialization for display, download, or
// append-only persistence.
type ChangeRecord struct {
	ID          string              `json:"id"`
	Source      Source              `json:"source"`
	Stats       Stats               `json:"stats"`
	UnifiedDiff string              `json:"unified_diff"`
	Hunks       []diffparse.Hunk    `json:"hunks"`
	Heuristics  heuristics.Findings `json:"heuristics"`
}
