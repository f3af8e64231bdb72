package heuristics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/diffrec/internal/diffparse"
)

// NumericChange records an identifier whose assigned numeric literal
// differs between the deleted and added lines of a hunk.
type NumericChange struct {
	Key string  `json:"key"`
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// Findings aggregates the risk signals detected across all hunks.
// RiskFlags is deduplicated and lexicographically sorted; the keyword
// and numeric sequences preserve encounter order and duplicates.
type Findings struct {
	RiskFlags       []string        `json:"risk_flags"`
	NumericChanges  []NumericChange `json:"numeric_changes"`
	RemovedKeywords []string        `json:"removed_keywords"`
	AddedKeywords   []string        `json:"added_keywords"`
}

// lineRule raises a flag when a single operation of the given kind
// matches its predicate.
type lineRule struct {
	op    diffparse.Op
	match func(text string) bool
	flag  string
}

var (
	loggingRE = regexp.MustCompile(`\blog\b|\blogger\b`)

	// numericAssignRE matches "ident = number" with an optional trailing
	// comment, the shape of a tunable-parameter assignment.
	numericAssignRE = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(-?\d+(\.\d+)?)\s*(#.*)?$`)
)

var lineRules = []lineRule{
	{diffparse.OpDelete, func(t string) bool { return strings.Contains(t, "try:") }, "removed_try_block"},
	{diffparse.OpDelete, func(t string) bool { return strings.Contains(t, "assert ") }, "removed_assert"},
	{diffparse.OpDelete, loggingRE.MatchString, "removed_logging"},
	{diffparse.OpAdd, containsTODO, "todo_added"},
}

func containsTODO(t string) bool {
	lower := strings.ToLower(t)
	return strings.Contains(lower, "todo") || strings.Contains(lower, "fixme")
}

func containsPassword(t string) bool {
	return strings.Contains(strings.ToLower(t), "password")
}

// Analyze scans the ordered hunk sequence and returns the merged
// findings. All slices are non-nil so an empty result serializes as
// empty JSON arrays rather than null.
func Analyze(hunks []diffparse.Hunk) Findings {
	f := Findings{
		RiskFlags:       []string{},
		NumericChanges:  []NumericChange{},
		RemovedKeywords: []string{},
		AddedKeywords:   []string{},
	}
	flags := make(map[string]bool)

	for _, h := range hunks {
		var dels, adds []string
		for _, op := range h.Ops {
			for _, rule := range lineRules {
				if op.Op == rule.op && rule.match(op.Text) {
					flags[rule.flag] = true
				}
			}
			switch op.Op {
			case diffparse.OpDelete:
				dels = append(dels, op.Text)
				if containsPassword(op.Text) {
					f.RemovedKeywords = append(f.RemovedKeywords, op.Text)
				}
			case diffparse.OpAdd:
				adds = append(adds, op.Text)
				if containsPassword(op.Text) {
					f.AddedKeywords = append(f.AddedKeywords, op.Text)
				}
			}
		}

		// Numeric parameter changes: foo = 5 on the delete side paired
		// with foo = 2 on the add side. Every deleted assignment pairs
		// with every added assignment of the same identifier within the
		// hunk; repeated matches are kept as-is, not deduplicated.
		for _, d := range dels {
			md := numericAssignRE.FindStringSubmatch(d)
			if md == nil {
				continue
			}
			key := md[1]
			oldVal, _ := strconv.ParseFloat(md[2], 64)
			for _, a := range adds {
				ma := numericAssignRE.FindStringSubmatch(a)
				if ma == nil || ma[1] != key {
					continue
				}
				newVal, _ := strconv.ParseFloat(ma[2], 64)
				f.NumericChanges = append(f.NumericChanges, NumericChange{Key: key, Old: oldVal, New: newVal})
				switch {
				case newVal < oldVal:
					flags["reduced_"+key] = true
				case newVal > oldVal:
					flags["increased_"+key] = true
				}
			}
		}
	}

	for flag := range flags {
		f.RiskFlags = append(f.RiskFlags, flag)
	}
	sort.Strings(f.RiskFlags)
	return f
}
