package mapping

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for EntryDef.
// Accepts either a [destination, source, length] sequence or a mapping.
func (e *EntryDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var vals []uint64

		err := node.Decode(&vals)
		if err != nil {
			return err
		}

		if len(vals) != 3 {
			return fmt.Errorf("line %d: entry needs 3 values (destination, source, length), got %d", node.Line, len(vals))
		}

		*e = EntryDef{Destination: vals[0], Source: vals[1], Length: vals[2]}

		return nil

	case yaml.MappingNode:
		// The alias drops the method set so Decode does not recurse.
		type plain EntryDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*e = EntryDef(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected entry sequence or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for EntryDef.
// Outputs a flow sequence: [destination, source, length].
func (e EntryDef) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}

	for _, v := range []uint64{e.Destination, e.Source, e.Length} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(v, 10),
		})
	}

	return node, nil
}
