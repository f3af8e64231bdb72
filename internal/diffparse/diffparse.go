package diffparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Op identifies what a diff operation does to a line.
type Op string

const (
	OpContext Op = "ctx"
	OpDelete  Op = "del"
	OpAdd     Op = "add"
)

// Operation is one line-level action inside a hunk. Text is the line
// content with the leading marker character and newline stripped.
type Operation struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Hunk is one contiguous region of change. Starts are 1-based line
// numbers in the respective coordinate spaces of the two inputs.
// OldSnippet and NewSnippet are the before/after text reconstructed
// from the operations, joined by newline.
type Hunk struct {
	OldStart   int         `json:"old_start"`
	OldLen     int         `json:"old_len"`
	NewStart   int         `json:"new_start"`
	NewLen     int         `json:"new_len"`
	Ops        []Operation `json:"ops"`
	OldSnippet string      `json:"old_snippet"`
	NewSnippet string      `json:"new_snippet"`
}

// hunkHeaderRE matches "@@ -start[,len] +start[,len] @@"; an omitted
// length defaults to 1.
var hunkHeaderRE = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@`)

// Parse extracts the ordered hunk sequence from unified diff text.
//
// Lines before the first hunk header (file headers, sentinel text,
// arbitrary prefix content) are skipped, as is any line whose header
// shape does not parse. Inside a hunk, lines are classified by their
// leading character; a "\ No newline at end of file" marker contributes
// no operation. Empty input yields an empty sequence. Parse never fails.
func Parse(unified string) []Hunk {
	hunks := []Hunk{}
	lines := strings.Split(unified, "\n")

	i := 0
	for i < len(lines) {
		m := hunkHeaderRE.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}

		h := Hunk{
			OldStart: atoiDefault(m[1], 1),
			OldLen:   atoiDefault(m[2], 1),
			NewStart: atoiDefault(m[3], 1),
			NewLen:   atoiDefault(m[4], 1),
			Ops:      []Operation{},
		}

		var oldBuf, newBuf []string
		i++
		for i < len(lines) && !strings.HasPrefix(lines[i], "@@ ") {
			l := lines[i]
			switch {
			case strings.HasPrefix(l, "-"):
				h.Ops = append(h.Ops, Operation{Op: OpDelete, Text: l[1:]})
				oldBuf = append(oldBuf, l[1:])
			case strings.HasPrefix(l, "+"):
				h.Ops = append(h.Ops, Operation{Op: OpAdd, Text: l[1:]})
				newBuf = append(newBuf, l[1:])
			case strings.HasPrefix(l, " "):
				h.Ops = append(h.Ops, Operation{Op: OpContext, Text: l[1:]})
				oldBuf = append(oldBuf, l[1:])
				newBuf = append(newBuf, l[1:])
			}
			// Anything else (no-newline markers, blank trailing line) is
			// skipped without producing an operation.
			i++
		}

		h.OldSnippet = strings.Join(oldBuf, "\n")
		h.NewSnippet = strings.Join(newBuf, "\n")
		hunks = append(hunks, h)
	}

	return hunks
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
