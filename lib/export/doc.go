// Package export serializes the results of a mining run.
//
// A Report carries the shape of the database, the total length of the final code
// table, its patterns in cover order and the labelled cover. Four serializers are
// available through New:
//
//   - json: human-readable, the default of the CLI
//   - yaml: human-readable, convenient for hand-edited fixtures
//   - gob: Go's self-describing binary format
//   - binary: a compact length-prefixed layout in big-endian byte order, with a flag
//     byte telling which optional sections are present
//
// All serializers are stateless and safe for concurrent use.
//
// Usage:
//
//	s, err := export.New("json")
//	data, err := s.Serialize(export.NewReport(eng, ct))
package export
