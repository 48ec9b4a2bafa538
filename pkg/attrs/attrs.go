package attrs

import (
	"fmt"
	"html"
	"slices"
	"strings"
)

// Pair is a single ordered attribute entry. Use Pairs when the order of keys
// matters, since Go maps are iterated in random order.
type Pair struct {
	Key   string
	Value any
}

// Pairs is an ordered attribute mapping.
type Pairs []Pair

// Set is an ordered mapping of attribute names to values. A value is either a
// scalar or a nested *Set, which serializes as a single `k1:v1;k2:v2` attribute
// (the usual shape of `style`).
type Set struct {
	keys   []string
	values map[string]any
}

// New builds a set from ordered pairs. Map and Pairs values are converted into
// nested sets.
func New(pairs ...Pair) *Set {
	s := &Set{values: make(map[string]any, len(pairs))}
	for _, pair := range pairs {
		s.Set(pair.Key, pair.Value)
	}
	return s
}

// FromMap builds a set from an unordered map. Keys are inserted in sorted order
// so serialization stays deterministic.
func FromMap(values map[string]any) *Set {
	s := New()
	for _, key := range sortedKeys(values) {
		s.Set(key, values[key])
	}
	return s
}

// Set stores value under key. Existing keys keep their position.
func (s *Set) Set(key string, value any) *Set {
	key = strings.TrimSpace(key)
	if key == "" {
		return s
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = normalizeValue(value)
	return s
}

// Get returns the value stored under key.
func (s *Set) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[key]
	return value, ok
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key.
func (s *Set) Delete(key string) {
	if s == nil {
		return
	}
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Keys returns the attribute names in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Len returns the number of attributes.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Nested returns the nested set stored at key, creating it when missing. A
// scalar stored at key is replaced by an empty nested set in place.
func (s *Set) Nested(key string) *Set {
	if value, ok := s.Get(key); ok {
		if nested, ok := value.(*Set); ok {
			return nested
		}
	}
	nested := New()
	s.Set(key, nested)
	return nested
}

// SetNested writes a single leaf inside the nested set at key, leaving sibling
// leaves untouched.
func (s *Set) SetNested(key, sub string, value any) *Set {
	s.Nested(key).Set(sub, value)
	return s
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	out := New()
	if s == nil {
		return out
	}
	for _, key := range s.keys {
		value := s.values[key]
		if nested, ok := value.(*Set); ok {
			value = nested.Clone()
		}
		out.keys = append(out.keys, key)
		out.values[key] = value
	}
	return out
}

// Map returns a plain representation, mostly useful in tests and for template
// payloads.
func (s *Set) Map() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.keys))
	for _, key := range s.keys {
		value := s.values[key]
		if nested, ok := value.(*Set); ok {
			value = nested.Map()
		}
		out[key] = value
	}
	return out
}

// String serializes the set into a markup attribute string.
func (s *Set) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		switch value := s.values[key].(type) {
		case nil:
			continue
		case bool:
			if value {
				parts = append(parts, html.EscapeString(key))
			}
		case *Set:
			if inline := value.declarations(); inline != "" {
				parts = append(parts, html.EscapeString(key)+`="`+html.EscapeString(inline)+`"`)
			}
		default:
			parts = append(parts, html.EscapeString(key)+`="`+html.EscapeString(Stringify(value))+`"`)
		}
	}
	return strings.Join(parts, " ")
}

func (s *Set) declarations() string {
	parts := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		value := s.values[key]
		if value == nil {
			continue
		}
		parts = append(parts, key+":"+Stringify(value))
	}
	return strings.Join(parts, ";")
}

// Stringify renders a scalar attribute value.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return ""
	case *Set:
		return v.declarations()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case *Set:
		return v.Clone()
	case map[string]any:
		return FromMap(v)
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, val := range v {
			converted[key] = val
		}
		return FromMap(converted)
	case Pairs:
		return New(v...)
	case []Pair:
		return New(v...)
	default:
		return value
	}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
