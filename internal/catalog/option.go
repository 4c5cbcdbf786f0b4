package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// optionFields mirrors Option without its custom decoders.
type optionFields struct {
	Label string `json:"text" yaml:"text"`
	Value string `json:"value" yaml:"value"`
	Src   string `json:"src" yaml:"src"`
}

// UnmarshalYAML accepts either a bare label or a mapping with text/value/src.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		o.Label = node.Value
		return nil
	case yaml.MappingNode:
		var fields optionFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*o = Option(fields)
		return nil
	default:
		return fmt.Errorf("line %d: option must be a string or a mapping", node.Line)
	}
}

// UnmarshalJSON accepts either a bare label or an object with text/value/src.
func (o *Option) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &o.Label)
	}
	var fields optionFields
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fields); err != nil {
		return err
	}
	*o = Option(fields)
	return nil
}
