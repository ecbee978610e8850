package ply

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is a textual point-cloud description.
//
//	type: "<fffBBB"
//	header: |
//	  element vertex 2
//	  property float x
//	  ...
//	input: [1.0, 2.0, 3.0, 255, 0, 0, ...]
//
// Input keeps the YAML scalars as decoded (int, uint64, float64 or bool) so
// 64-bit integers are packed without passing through a float.
type Source struct {
	Type   string `yaml:"type"`
	Header string `yaml:"header"`
	Input  []any  `yaml:"input"`
}

// ParseSource decodes a YAML point-cloud description.
func ParseSource(data []byte) (*Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	if src.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrSource)
	}
	return &src, nil
}

// LoadSource reads and decodes a point-cloud description file.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(data)
}
