package export

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFormat is returned by New for an unsupported format name
var ErrUnknownFormat = errors.New("export: unknown format")

// Serializer is the interface for all report serializers
type Serializer interface {
	// Serialize serializes a Report into a byte array
	Serialize(r Report) ([]byte, error)
	// Deserialize deserializes a byte array into a Report
	Deserialize(b []byte, r *Report) error
}

var factories = map[string]func() Serializer{
	"json":   NewJSONSerializer,
	"yaml":   NewYAMLSerializer,
	"gob":    NewGOBSerializer,
	"binary": NewBinarySerializer,
}

// New returns the serializer registered under name
func New(name string) (Serializer, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, name, Formats())
	}
	return factory(), nil
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
