// Package index provides the occurrence index queried by the cover engine.
//
// The index is constructed once from a database by concatenating, per
// sequence, the fixed-width-2 codes of its tokens (symbol byte followed by
// the sequence byte) into one string and building a suffix array over it.
// Find answers "where does token T occur" with character positions into the
// token's sequence string; callers divide by TokenWidth to recover the time
// step.
//
// Lookups are memoised in an xsync.MapOf, so repeated cover passes over the
// same database only pay for the suffix array search once per token. The
// index is immutable after construction and safe for concurrent use.
package index
