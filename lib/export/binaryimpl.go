package export

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/axelroques/ditto/lib/ditto"
)

// NewBinarySerializer creates a new serializer using a compact length-prefixed binary format
func NewBinarySerializer() Serializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements Serializer using a custom binary format
type binarySerializerImpl struct {
}

// binaryVersion is the first byte of every encoded report
const binaryVersion byte = 1

// Bit flags to indicate which optional sections are present
const (
	hasRunID    byte = 1 << 0
	hasPatterns byte = 1 << 1
	hasCover    byte = 1 << 2
	isFilled    byte = 1 << 3
)

// --------------------------------------------------------------------------
// Interface Methods (docu see export.Serializer)
// --------------------------------------------------------------------------

func (b binarySerializerImpl) Serialize(r Report) ([]byte, error) {
	result := make([]byte, 0, b.sizeBytes(r))

	// Write header: version, flags, shape and length
	var flags byte
	if r.RunID != "" {
		flags |= hasRunID
	}
	if r.Patterns != nil {
		flags |= hasPatterns
	}
	if r.Cover != nil {
		flags |= hasCover
	}
	if r.Filled {
		flags |= isFilled
	}
	result = append(result, binaryVersion, flags)
	result = binary.BigEndian.AppendUint32(result, uint32(r.Sequences))
	result = binary.BigEndian.AppendUint32(result, uint32(r.Steps))
	result = binary.BigEndian.AppendUint64(result, math.Float64bits(r.TotalLength))

	// Handle RunID
	if flags&hasRunID != 0 {
		result = appendString(result, r.RunID)
	}

	// Handle Patterns
	if flags&hasPatterns != 0 {
		result = binary.BigEndian.AppendUint32(result, uint32(len(r.Patterns)))
		for _, row := range r.Patterns {
			result = appendString(result, row.Name)
			result = binary.BigEndian.AppendUint64(result, uint64(int64(row.Usage)))
			result = binary.BigEndian.AppendUint64(result, uint64(int64(row.Gap)))
		}
	}

	// Handle Cover
	if flags&hasCover != 0 {
		result = binary.BigEndian.AppendUint32(result, uint32(len(r.Cover)))
		for _, line := range r.Cover {
			result = binary.BigEndian.AppendUint32(result, uint32(len(line)))
			for _, label := range line {
				result = appendString(result, label)
			}
		}
	}

	return result, nil
}

func (b binarySerializerImpl) Deserialize(data []byte, r *Report) error {
	rd := &reader{data: data}

	// Check minimum size (version + flags + shape + length)
	if len(data) < 2+4+4+8 {
		return fmt.Errorf("data too short for report header")
	}
	if version := rd.readByte(); version != binaryVersion {
		return fmt.Errorf("unsupported binary report version %d", version)
	}
	flags := rd.readByte()
	r.Sequences = int(rd.readUint32())
	r.Steps = int(rd.readUint32())
	r.TotalLength = math.Float64frombits(rd.readUint64())
	r.Filled = flags&isFilled != 0

	// Read RunID if present
	r.RunID = ""
	if flags&hasRunID != 0 {
		r.RunID = rd.readString("run id")
	}

	// Read Patterns if present
	r.Patterns = nil
	if flags&hasPatterns != 0 {
		n := rd.readCount("patterns", 4+8+8)
		r.Patterns = make([]ditto.Row, 0, n)
		for i := 0; i < n && rd.err == nil; i++ {
			row := ditto.Row{Name: rd.readString("pattern name")}
			row.Usage = int(int64(rd.readUint64()))
			row.Gap = int(int64(rd.readUint64()))
			r.Patterns = append(r.Patterns, row)
		}
	}

	// Read Cover if present
	r.Cover = nil
	if flags&hasCover != 0 {
		n := rd.readCount("cover rows", 4)
		r.Cover = make([][]string, 0, n)
		for i := 0; i < n && rd.err == nil; i++ {
			cols := rd.readCount("cover row", 4)
			line := make([]string, 0, cols)
			for j := 0; j < cols && rd.err == nil; j++ {
				line = append(line, rd.readString("cover label"))
			}
			r.Cover = append(r.Cover, line)
		}
	}

	return rd.err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// sizeBytes calculates the total size needed for serialization
func (b binarySerializerImpl) sizeBytes(r Report) int {
	// version, flags, sequences, steps, total length
	size := 2 + 4 + 4 + 8

	if r.RunID != "" {
		size += 4 + len(r.RunID)
	}
	if r.Patterns != nil {
		size += 4
		for _, row := range r.Patterns {
			size += 4 + len(row.Name) + 8 + 8
		}
	}
	if r.Cover != nil {
		size += 4
		for _, line := range r.Cover {
			size += 4
			for _, label := range line {
				size += 4 + len(label)
			}
		}
	}
	return size
}

func appendString(b []byte, s string) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}

// reader decodes big-endian fields and keeps the first error
type reader struct {
	data []byte
	pos  int
	err  error
}

func (rd *reader) need(n int, what string) bool {
	if rd.err != nil {
		return false
	}
	if rd.pos+n > len(rd.data) {
		rd.err = fmt.Errorf("data too short for %s", what)
		return false
	}
	return true
}

func (rd *reader) readByte() byte {
	if !rd.need(1, "byte") {
		return 0
	}
	v := rd.data[rd.pos]
	rd.pos++
	return v
}

func (rd *reader) readUint32() uint32 {
	if !rd.need(4, "uint32") {
		return 0
	}
	v := binary.BigEndian.Uint32(rd.data[rd.pos : rd.pos+4])
	rd.pos += 4
	return v
}

func (rd *reader) readUint64() uint64 {
	if !rd.need(8, "uint64") {
		return 0
	}
	v := binary.BigEndian.Uint64(rd.data[rd.pos : rd.pos+8])
	rd.pos += 8
	return v
}

// readCount reads an element count and checks it against the remaining data,
// given the minimum encoded size of one element
func (rd *reader) readCount(what string, minSize int) int {
	n := int(rd.readUint32())
	if rd.err == nil && n*minSize > len(rd.data)-rd.pos {
		rd.err = fmt.Errorf("data too short for %d %s", n, what)
		return 0
	}
	return n
}

func (rd *reader) readString(what string) string {
	n := int(rd.readUint32())
	if !rd.need(n, what) {
		return ""
	}
	s := string(rd.data[rd.pos : rd.pos+n])
	rd.pos += n
	return s
}
