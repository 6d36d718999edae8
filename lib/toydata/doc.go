/*
Package toydata generates synthetic databases with planted patterns, used as
test fixtures and by the generate command.

Every sequence is drawn uniformly from its own alphabet, the first k lowercase
letters with k picked per sequence. Patterns are then drawn from the singletons
of that random data and planted at random positions, token i of a pattern at
step pos+i of its own sequence, until every pattern covers the requested
fraction of the cells. Planted cells never overlap.

The generator is deterministic for a given seed:

	res, err := toydata.Generate(toydata.DefaultParams(), 42)
	d, err := database.FromRows(res.Rows)
*/
package toydata
