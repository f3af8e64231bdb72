// Package diffparse parses unified diff text into structured hunks.
//
// Each hunk carries its header coordinates, the ordered line operations
// (context, delete, add), and before/after snippets reconstructed from
// those operations. Parsing is deliberately permissive: the diff text is
// machine-generated in the normal path, so malformed headers and stray
// lines are skipped rather than reported as errors.
package diffparse
