package export

import "encoding/json"

// NewJSONSerializer creates a new serializer using indented json encoding
func NewJSONSerializer() Serializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the Serializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see export.Serializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (j jsonSerializerImpl) Deserialize(b []byte, r *Report) error {
	return json.Unmarshal(b, r)
}
