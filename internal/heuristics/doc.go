// Package heuristics scans parsed diff hunks for quick risk signals.
//
// The signals are intentionally shallow: removed exception handling,
// removed assertions or logging, added TODO/FIXME markers, numeric
// parameter assignments that changed value, and lines touching
// sensitive keywords. Rules are independent predicate/effect pairs
// evaluated per operation so new signals can be added without touching
// the scan loop. The whole analysis is a pure function over the hunk
// sequence; unmatched patterns simply produce no output.
package heuristics
