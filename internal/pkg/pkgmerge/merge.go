package pkgmerge

// Merge returns a new map holding base with overlay merged on top.
//
// When both sides hold a map[string]any under the same key, the two maps are
// merged key by key. Otherwise the overlay value wins.
func Merge(base, overlay map[string]any) map[string]any {
	out := Clone(base)
	if out == nil {
		out = make(map[string]any, len(overlay))
	}

	for k, v := range overlay {
		ov, ok := v.(map[string]any)
		if !ok {
			out[k] = cloneValue(v)
			continue
		}

		if bv, ok := out[k].(map[string]any); ok {
			out[k] = Merge(bv, ov)
			continue
		}

		out[k] = Clone(ov)
	}

	return out
}

// Compose merges options over required and then re-applies required, so keys
// present in required always end up with required's values.
func Compose(required, options map[string]any) map[string]any {
	out := Merge(required, options)
	for k, v := range required {
		out[k] = cloneValue(v)
	}

	return out
}

// Clone deep-copies nested maps and []any slices. Other values are shared.
func Clone(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}

	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		res := make([]any, len(val))
		for i, v2 := range val {
			res[i] = cloneValue(v2)
		}
		return res
	default:
		return v
	}
}
