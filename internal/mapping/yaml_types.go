package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"hash-mapper/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// --- FilterSpec YAML methods ---

type filterSpecYAML struct {
	From StringOrArray `yaml:"from,omitempty"`
	To   StringOrArray `yaml:"to,omitempty"`
}

// UnmarshalYAML accepts a name, a list of names, or a {from, to} mapping.
func (f *FilterSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		var to StringOrArray
		if err := node.Decode(&to); err != nil {
			return err
		}

		*f = FilterSpec{To: to}

		return nil

	case yaml.MappingNode:
		var raw filterSpecYAML
		if err := node.Decode(&raw); err != nil {
			return err
		}

		*f = FilterSpec{From: raw.From, To: raw.To}

		return nil

	default:
		return fmt.Errorf("expected filter name, list or mapping, got %v", node.Kind)
	}
}

// MarshalYAML writes the shorthand form when only "to" filters exist.
func (f FilterSpec) MarshalYAML() (any, error) {
	if len(f.From) == 0 {
		return f.To, nil
	}

	return filterSpecYAML{From: f.From, To: f.To}, nil
}

// --- OptionalValue YAML methods ---

// UnmarshalYAML records that a value was given and decodes it.
func (o *OptionalValue) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	*o = OptionalValue{Value: v, Set: true}

	return nil
}

// MarshalYAML writes the plain value.
func (o OptionalValue) MarshalYAML() (any, error) {
	return o.Value, nil
}
