// Package record contains the core types and pipeline for building
// structured change records from two text documents.
//
// It defines the ChangeRecord, Stats, and Source types, normalizes raw
// text into comparison lines, computes character/line/token similarity
// via sequence alignment, generates the unified diff, and assembles the
// parsed hunks and heuristic findings into one immutable record with a
// unique id. The pipeline is pure aside from the id's time and
// randomness sources: building twice from identical inputs yields
// identical stats, diff, hunks, and heuristics.
package record
