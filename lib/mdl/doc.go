/*
Package mdl computes the two-part Minimum Description Length of a code table and
decides whether a structural change to that table is worth keeping.

The total length of a code table CT over a database D is

	L(D, CT) = L(D|CT) + L(CT|D)

where L(D|CT) is the entropy of the occurrence stream plus the entropy of the gap
stream of the cover, and L(CT|D) spells out the code of every used pattern and its
tokens with the frequencies of the singleton table. All logarithms are base 10.

A cover that leaves a cell unfilled has infinite length, so a table that cannot
encode the data is always rejected.

The Evaluator caches the length of the unchanged table between tests:

	ev := mdl.NewEvaluator(st, engine, mdl.DefaultMinImprovement)
	decision := ev.Compare(ct, candidate)
	if decision.Accepted {
		// candidate stays in ct
	}
*/
package mdl
