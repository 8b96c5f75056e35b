package specfile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a spec document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Parse decodes a spec document. JSON is read by the YAML decoder, which
// accepts it as a subset.
func Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func parseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if root.Kind == 0 {
		return &Document{}, nil
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at the top level", ErrInvalidDocument)
	}

	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return documentFromMap(m, fieldOrder(node))
}

// fieldOrder returns the keys of the top level "fields" mapping in source order.
func fieldOrder(node *yaml.Node) []string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "fields" {
			continue
		}
		fields := node.Content[i+1]
		if fields.Kind != yaml.MappingNode {
			return nil
		}
		order := make([]string, 0, len(fields.Content)/2)
		for j := 0; j+1 < len(fields.Content); j += 2 {
			order = append(order, fields.Content[j].Value)
		}
		return order
	}
	return nil
}

func parseTOML(data []byte) (*Document, error) {
	var m map[string]any
	decoder := toml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return documentFromMap(m, nil)
}
