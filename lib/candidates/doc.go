/*
Package candidates proposes new patterns for a code table.

Every ordered pair of patterns (X, Y) of the table, X == Y included, yields the
candidate XY. Its gain is estimated in closed form from the usages x and y of the
parents and the total usage s of the table, without running a cover pass. A more
negative estimate is more promising.

Candidates are returned in ascending order of their estimate. Candidates with an
infinite estimate (a parent without usage, or more tokens than allowed) are dropped.
*/
package candidates
