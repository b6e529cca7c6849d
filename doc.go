// Package spreadsheet implements an in-memory spreadsheet engine: a
// sparse two-dimensional grid of typed cells, formula evaluation with
// cross-cell references and cycle detection, rectangle copy with
// relative-address rewriting, and a line-oriented save format.
//
// Cell contents are classified on store: text beginning with '=' is
// parsed as a formula, text that parses entirely as a number is stored
// numerically, and everything else is plain text. Evaluation threads a
// visited-address set through transitive references, so a cyclic
// reference contributes the empty value instead of recursing forever.
package spreadsheet
