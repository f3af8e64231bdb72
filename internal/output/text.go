package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/diffrec/internal/record"
)

// TextWriter outputs a human-readable comparison summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, rec *record.ChangeRecord) error {
	ew := &errWriter{w: w}

	// Summary header
	ew.printf("Diffrec — %s vs %s\n", rec.Source.LeftName, rec.Source.RightName)
	ew.printf("Record: %s\n", rec.ID)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Lines: %d left, %d right\n", rec.Stats.LinesLeft, rec.Stats.LinesRight)
	ew.printf("Character similarity: %6.2f%%\n", rec.Stats.CharSimilarity*100)
	ew.printf("Line similarity:      %6.2f%%\n", rec.Stats.LineSimilarity*100)
	ew.printf("Token (Jaccard):      %6.2f%%\n", rec.Stats.TokenJaccard*100)
	ew.printf("Estimated different:  %6.2f%%\n", rec.Stats.PercentDifferentEstimate)
	ew.println(strings.Repeat("─", 60))

	if rec.UnifiedDiff == record.NoDifferences {
		ew.println("\nNo differences. The two sides are identical.")
		return ew.err
	}

	ew.printf("Hunks: %d\n", len(rec.Hunks))

	h := rec.Heuristics
	if len(h.RiskFlags) == 0 && len(h.NumericChanges) == 0 &&
		len(h.RemovedKeywords) == 0 && len(h.AddedKeywords) == 0 {
		ew.println("No heuristic signals.")
		return ew.err
	}

	if len(h.RiskFlags) > 0 {
		ew.printf("\nRisk flags: %s\n", strings.Join(h.RiskFlags, ", "))
	}
	if len(h.NumericChanges) > 0 {
		ew.println("\nNumeric parameter changes:")
		for _, nc := range h.NumericChanges {
			ew.printf("  %s: %s -> %s\n", nc.Key, formatNumber(nc.Old), formatNumber(nc.New))
		}
	}
	if len(h.RemovedKeywords) > 0 {
		ew.printf("\nSensitive lines removed: %d\n", len(h.RemovedKeywords))
		for _, line := range h.RemovedKeywords {
			ew.printf("  - %s\n", line)
		}
	}
	if len(h.AddedKeywords) > 0 {
		ew.printf("\nSensitive lines added: %d\n", len(h.AddedKeywords))
		for _, line := range h.AddedKeywords {
			ew.printf("  + %s\n", line)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func formatNumber(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}
