// Diffrec compares two text documents and builds structured change records.
//
// Each comparison produces similarity metrics (character, line, token),
// a unified diff, parsed hunks, and heuristic risk annotations, emitted
// as a single JSON-serializable record that can be appended to a
// line-delimited JSON dataset for later review.
//
// Usage:
//
//	diffrec compare old.py new.py                  # print a text summary
//	diffrec compare old.py new.py --format json    # print the full record
//	diffrec compare old.py new.py --append         # also append to changes.jsonl
//	diffrec compare - new.py < old.py              # read one side from stdin
//	diffrec config init                            # create a config file
//
// See https://github.com/dshills/diffrec for full documentation.
package main
