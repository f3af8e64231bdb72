package record

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// NoDifferences is returned in place of an empty diff so consumers can
// distinguish "inputs were identical" from "no diff was computed".
const NoDifferences = "(no differences)"

// UnifiedDiffText produces a unified diff between two newline-terminated
// line sequences with the given number of context lines around each
// change. Identical sequences yield the NoDifferences sentinel.
func UnifiedDiffText(left, right []string, leftName, rightName string, context int) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        left,
		B:        right,
		FromFile: leftName,
		ToFile:   rightName,
		Context:  context,
	})
	if err != nil {
		return "", fmt.Errorf("generating unified diff: %w", err)
	}
	if text == "" {
		return NoDifferences, nil
	}
	return text, nil
}
