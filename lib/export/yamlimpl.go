package export

import "gopkg.in/yaml.v3"

// NewYAMLSerializer creates a new serializer using yaml encoding
func NewYAMLSerializer() Serializer {
	return &yamlSerializerImpl{}
}

// yamlSerializerImpl implements the Serializer interface using yaml encoding
type yamlSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see export.Serializer)
// --------------------------------------------------------------------------

func (y yamlSerializerImpl) Serialize(r Report) ([]byte, error) {
	return yaml.Marshal(r)
}

func (y yamlSerializerImpl) Deserialize(b []byte, r *Report) error {
	return yaml.Unmarshal(b, r)
}
