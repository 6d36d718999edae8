// Package database provides the immutable symbol database consumed by the
// ditto engine and the adapters that normalize external inputs into it.
//
// A Database is a matrix of N sequences by L time steps. Each cell holds a
// pattern.Token, i.e. a symbol already tagged with its sequence index, so
// that identical letters in different sequences are distinct tokens.
//
// Adapters:
//
//   - FromRows: one string per sequence, one byte per symbol (ASCII, no digits)
//   - FromMatrix: an N x L matrix of single-symbol strings (N < L required)
//   - FromColumns: a column table where every column except "t" is a sequence
//   - ReadRows / ReadCSV: reader based variants used by the command line
//
// All adapters fail fast with one of the sentinel errors of this package
// when the input is empty, ragged, uses non-ASCII or digit symbols, or holds more
// sequences than the occurrence index can tag (256).
package database
