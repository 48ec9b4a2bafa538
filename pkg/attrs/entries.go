package attrs

import "slices"

// Entries flattens a mapping-like value into ordered pairs. Plain maps are
// sorted by key; Pairs and *Set keep their own order. The boolean is false when
// value is not a mapping.
func Entries(value any) (Pairs, bool) {
	switch v := value.(type) {
	case Pairs:
		return slices.Clone(v), true
	case []Pair:
		return slices.Clone(Pairs(v)), true
	case *Set:
		if v == nil {
			return nil, false
		}
		out := make(Pairs, 0, v.Len())
		for _, key := range v.keys {
			out = append(out, Pair{Key: key, Value: v.values[key]})
		}
		return out, true
	case map[string]any:
		out := make(Pairs, 0, len(v))
		for _, key := range sortedKeys(v) {
			out = append(out, Pair{Key: key, Value: v[key]})
		}
		return out, true
	case map[string]string:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		out := make(Pairs, 0, len(v))
		for _, key := range keys {
			out = append(out, Pair{Key: key, Value: v[key]})
		}
		return out, true
	default:
		return nil, false
	}
}

// IsMapping reports whether Entries would accept value.
func IsMapping(value any) bool {
	_, ok := Entries(value)
	return ok
}
