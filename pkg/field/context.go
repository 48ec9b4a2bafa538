package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve looks name up in ctx. An exact key match wins; otherwise bracket
// notation ("user[email]", "tags[0]") walks nested maps and slices.
func Resolve(ctx map[string]any, name string) (any, bool) {
	if len(ctx) == 0 {
		return nil, false
	}
	if value, ok := ctx[name]; ok {
		return value, true
	}

	segments := pathSegments(name)
	if len(segments) < 2 {
		return nil, false
	}

	var current any = ctx
	for _, segment := range segments {
		next, ok := child(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Assign stores value in ctx under name, the inverse of Resolve. Bracket
// segments create nested map[string]any containers as needed.
func Assign(ctx map[string]any, name string, value any) error {
	if ctx == nil {
		return fmt.Errorf("field: assign %q: context is nil", name)
	}
	segments := pathSegments(name)
	if len(segments) == 0 {
		return fmt.Errorf("field: assign %q: invalid name", name)
	}

	current := ctx
	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if !exists {
			created := make(map[string]any)
			current[segment] = created
			current = created
			continue
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field: assign %q: segment %q holds %T", name, segment, next)
		}
		current = nested
	}
	current[segments[len(segments)-1]] = value
	return nil
}

func pathSegments(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	open := strings.IndexByte(name, '[')
	if open <= 0 {
		return []string{name}
	}

	segments := []string{name[:open]}
	rest := name[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}
	return segments
}

func child(container any, key string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		value, ok := c[key]
		return value, ok
	case map[string]string:
		value, ok := c[key]
		return value, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	case []string:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
