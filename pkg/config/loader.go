package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// Reserved widget keys. Anything else is passed to the kind factory.
const (
	keyName         = "name"
	keyKind         = "kind"
	keyID           = "id"
	keyLabel        = "label"
	keyError        = "error"
	keyReadonly     = "readonly"
	keyInline       = "inline"
	keyRequired     = "required"
	keyFallback     = "fallback"
	keyFallbackWhen = "fallback_when"
	keyAttrs        = "attrs"
)

// LoadFS walks fsys and parses every JSON/YAML file, in lexical path order.
// A nil fsys yields no documents.
func LoadFS(fsys fs.FS) ([]Document, error) {
	if fsys == nil {
		return nil, nil
	}

	var docs []Document
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}
		doc, err := LoadFile(fsys, path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// LoadFile reads and parses a single document from fsys.
func LoadFile(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML document. The root is either a mapping with a
// "widgets" list or the list itself.
func Parse(data []byte, source string) (Document, error) {
	root, err := decode(data, source)
	if err != nil {
		return Document{}, err
	}

	list := root
	if pairs, ok := root.(attrs.Pairs); ok {
		list = nil
		for _, pair := range pairs {
			if pair.Key == "widgets" {
				list = pair.Value
			}
		}
	}
	items, ok := list.([]any)
	if !ok {
		return Document{}, fmt.Errorf("config: file %s must define a widgets list", source)
	}

	doc := Document{Source: source, Widgets: make([]WidgetConfig, 0, len(items))}
	seen := make(map[string]struct{}, len(items))
	for idx, item := range items {
		cfg, err := parseWidget(item)
		if err != nil {
			return Document{}, fmt.Errorf("config: file %s widget %d: %w", source, idx, err)
		}
		if _, exists := seen[cfg.Name]; exists {
			return Document{}, fmt.Errorf("config: file %s defines duplicate widget %q", source, cfg.Name)
		}
		seen[cfg.Name] = struct{}{}
		doc.Widgets = append(doc.Widgets, cfg)
	}
	return doc, nil
}

// ParseContext decodes a JSON or YAML mapping into the nested maps a field
// context expects.
func ParseContext(data []byte, source string) (map[string]any, error) {
	root, err := decode(data, source)
	if err != nil {
		return nil, err
	}
	ctx, ok := plain(root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config: context %s must be a mapping", source)
	}
	return ctx, nil
}

func decode(data []byte, source string) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("config: file %s is empty", source)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", source, err)
	}
	value, err := nodeValue(&node)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return value, nil
}

func parseWidget(item any) (WidgetConfig, error) {
	pairs, ok := item.(attrs.Pairs)
	if !ok {
		return WidgetConfig{}, fmt.Errorf("expected a mapping, got %T", item)
	}

	cfg := WidgetConfig{Kind: widgets.KindText, Options: make(map[string]any)}
	for _, pair := range pairs {
		var err error
		switch pair.Key {
		case keyName:
			cfg.Name, err = stringValue(pair)
		case keyKind:
			cfg.Kind, err = stringValue(pair)
		case keyID:
			cfg.ID, err = stringValue(pair)
		case keyLabel:
			cfg.Label = pair.Value
		case keyError:
			cfg.Error = pair.Value
		case keyReadonly:
			cfg.Readonly, err = boolValue(pair)
		case keyInline:
			cfg.Inline, err = boolValue(pair)
		case keyRequired:
			switch v := pair.Value.(type) {
			case bool:
				cfg.Required = v
			case string:
				cfg.Required, cfg.RequiredMessage = true, strings.TrimSpace(v)
			default:
				err = fmt.Errorf("%s: expected bool or message, got %T", pair.Key, pair.Value)
			}
		case keyFallback:
			cfg.Fallback, cfg.HasFallback = pair.Value, true
		case keyFallbackWhen:
			if list, ok := pair.Value.([]any); ok {
				cfg.FallbackWhen = list
			} else {
				cfg.FallbackWhen = []any{pair.Value}
			}
		case keyAttrs:
			entries, ok := attrs.Entries(pair.Value)
			if !ok {
				err = fmt.Errorf("%s: expected a mapping, got %T", pair.Key, pair.Value)
			}
			cfg.Attrs = entries
		default:
			cfg.Options[pair.Key] = pair.Value
		}
		if err != nil {
			return WidgetConfig{}, err
		}
	}

	if cfg.Name == "" {
		return WidgetConfig{}, fmt.Errorf("name is required")
	}
	if cfg.Kind == "" {
		cfg.Kind = widgets.KindText
	}
	return cfg, nil
}

func stringValue(pair attrs.Pair) (string, error) {
	switch v := pair.Value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%s: expected a string, got %T", pair.Key, pair.Value)
	}
}

func boolValue(pair attrs.Pair) (bool, error) {
	v, ok := pair.Value.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected a bool, got %T", pair.Key, pair.Value)
	}
	return v, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
