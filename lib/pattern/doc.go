// Package pattern provides the unit of representation used by the ditto
// engine: sequence-tagged tokens and the patterns built from them.
//
// Key Components:
//
//   - Token: a database symbol tagged with the index of the sequence it was
//     read from. Identical letters from different sequences are different
//     tokens. A token prints as its symbol followed by the decimal sequence
//     index (e.g. "a0", "c1").
//
//   - Pattern: an ordered list of tokens treated as one unit when covering the
//     database. Every pattern carries a derived span (the maximum number of its
//     tokens attributed to a single sequence) and the usage statistics written
//     by the most recent cover pass.
//
// Cover Order:
//
//	Patterns are claimed by the cover engine longest first, ties broken
//	lexicographically by name. CoverOrderLess implements that comparison.
//
// Statistics Lifecycle:
//
//	Stats are only meaningful with respect to the most recent cover pass. A
//	freshly created pattern has Stats.Valid == false until a cover engine
//	sets them; any mutation of the owning code table makes them stale until
//	the next pass.
package pattern
