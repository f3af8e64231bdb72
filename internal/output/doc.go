// Package output formats change records for display or machine consumption.
//
// Three formats are supported:
//   - text — human-readable comparison summary (default)
//   - json — the full structured record, indented
//   - diff — the raw unified diff text only
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*record.ChangeRecord].
// [WriteRecord] is a convenience helper that handles destination selection
// between a file path and stdout.
package output
