// Package jsonl appends records to line-delimited JSON targets.
//
// Each record becomes exactly one compact JSON object per line, with no
// surrounding array and non-ASCII characters preserved. Appends are
// serialized with a mutex so concurrent writers cannot interleave
// partial lines. Failures surface to the caller with their underlying
// cause and are never retried.
package jsonl
