// Package table provides the two pattern tables of the ditto engine.
//
// Key Components:
//
//   - SingletonTable (ST): one pattern per distinct token, in order of first
//     appearance in the database. Its usage is frozen once from the initial
//     cover and then serves as the frequency prior used to spell out the
//     tokens of multi-token patterns (TokenCost).
//
//   - CodeTable (CT): the mutable working set being optimized. It starts as a
//     copy of the ST patterns and grows or shrinks as candidates are accepted
//     and patterns are pruned.
//
// Id Invariant:
//
//	Pattern ids double as offsets into the cover matrix, so the CT keeps
//	ids equal to slot positions at all times: Add appends with the next id,
//	Remove and Restore renumber every slot after the affected position. There
//	are never sparse holes and NextID always equals Len.
//
// Cover Order:
//
//	CoverOrder is computed from scratch over the current contents on every
//	call and never reorders the slots, because ids must stay stable.
//
// Thread-safety: tables are owned by a single search driver and are not safe
// for concurrent mutation.
package table
