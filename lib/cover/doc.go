// Package cover implements the cover engine of ditto: given a code table it
// assigns every database cell to at most one pattern occurrence and writes
// the usage, gap and fill statistics of every pattern.
//
// Algorithm:
//
// Patterns are processed in the cover order of the table. For each pattern
// the positions of every token are fetched from the occurrence index and the
// valid combinations of one position per token are enumerated depth first
// with an explicit work stack of partial occurrences. A position extends a
// partial occurrence only if
//
//   - its cell is not claimed yet (Unclaimed)
//   - it does not lie before the previous position (Directed)
//   - it stays inside the gap bound of the pattern, measured from the first
//     position: step - first + 1 < 2 * span (WithinGap)
//   - it is not the cell of the previous position when both share a
//     sequence (DistinctCell)
//
// Full combinations are emitted in lexicographic order and committed one by
// one. A combination that touches a cell claimed by an earlier occurrence of
// the same pattern, or that references one cell twice, is discarded; the
// latter is a known degenerate case and is logged at debug level.
//
// Statistics:
//
//	usage = committed occurrences
//	gap   = sum over multi-token occurrences of (last step - first step) - (span - 1)
//	fill  = (span - 1) * usage
//
// Cells no pattern could claim stay empty. Such a cover is valid output and
// signals a code table that cannot encode the data.
//
// Determinism: covering the same table twice yields identical matrices and
// statistics.
package cover
