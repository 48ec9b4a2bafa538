package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htwidget/pkg/attrs"
)

// nodeValue converts a YAML node to plain Go values. Mappings become
// attrs.Pairs so key order survives decoding.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return nodeValue(node.Content[0])
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.MappingNode:
		pairs := make(attrs.Pairs, 0, len(node.Content)/2)
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			keyNode, valueNode := node.Content[idx], node.Content[idx+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			value, err := nodeValue(valueNode)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, attrs.Pair{Key: keyNode.Value, Value: value})
		}
		return pairs, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := nodeValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

// plain converts attrs.Pairs produced by nodeValue back into maps, for callers
// that look values up by key (field contexts).
func plain(value any) any {
	switch v := value.(type) {
	case attrs.Pairs:
		out := make(map[string]any, len(v))
		for _, pair := range v {
			out[pair.Key] = plain(pair.Value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, item := range v {
			out[idx] = plain(item)
		}
		return out
	default:
		return value
	}
}
