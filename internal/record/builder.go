package record

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/diffrec/internal/diffparse"
	"github.com/dshills/diffrec/internal/heuristics"
)

// Options control how a comparison is performed. Empty names fall back
// to the package defaults; ContextLines of 0 is a valid choice (no
// context around changes).
type Options struct {
	LeftName     string
	RightName    string
	ContextLines int
	StripWS      bool
}

// Build runs the full comparison pipeline over two texts and returns
// one ChangeRecord: normalize both sides into lines, generate the
// unified diff, parse it into hunks, scan the hunks for heuristic
// signals, and compute similarity scores over the raw texts.
func Build(leftText, rightText string, opts Options) (*ChangeRecord, error) {
	if opts.LeftName == "" {
		opts.LeftName = DefaultLeftName
	}
	if opts.RightName == "" {
		opts.RightName = DefaultRightName
	}

	leftLines := SplitLines(leftText, opts.StripWS)
	rightLines := SplitLines(rightText, opts.StripWS)

	diff, err := UnifiedDiffText(leftLines, rightLines, opts.LeftName, opts.RightName, opts.ContextLines)
	if err != nil {
		return nil, err
	}

	hunks := diffparse.Parse(diff)
	scores := Similarity(leftText, rightText)

	return &ChangeRecord{
		ID:     newRecordID(),
		Source: Source{LeftName: opts.LeftName, RightName: opts.RightName},
		Stats: Stats{
			LinesLeft:                len(leftLines),
			LinesRight:               len(rightLines),
			CharSimilarity:           round(scores.Char, 4),
			LineSimilarity:           round(scores.Line, 4),
			TokenJaccard:             round(scores.TokenJaccard, 4),
			PercentDifferentEstimate: round((1-scores.Char)*100, 2),
		},
		UnifiedDiff: diff,
		Hunks:       hunks,
		Heuristics:  heuristics.Analyze(hunks),
	}, nil
}

// newRecordID combines a second-resolution UTC timestamp with a random
// suffix so rapid successive comparisons still get distinct ids.
func newRecordID() string {
	u := uuid.New()
	return fmt.Sprintf("%s_%x", time.Now().UTC().Format("2006-01-02T15:04:05Z"), u[:3])
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
