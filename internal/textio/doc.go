// Package textio decodes raw input bytes into text at the comparison
// boundary.
//
// Callers hand it whatever bytes they read from a file or stdin; it
// tries UTF-8, then BOM-marked UTF-16, then Latin-1, and falls back to
// lossy UTF-8 substitution rather than failing. Availability wins over
// exactness for this tool.
package textio
