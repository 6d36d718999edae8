/*
Package ditto is the boundary of the pattern mining engine.

Build prepares the singleton table, the code table and the occurrence index of a
database. Process runs the search to convergence. GetCover and GetResults re-cover
the database with a code table for inspection and reporting.

	eng, err := ditto.New(d, nil)
	if err != nil {
		return err
	}
	ct := eng.Process()
	cover, rows := eng.GetResults(ct)
*/
package ditto
