package entity

import (
	"encoding/json"
	"fmt"
)

// fields converts a partial update into top-level JSON fields.
func fields(partial any) (map[string]json.RawMessage, error) {
	var raw []byte
	switch p := partial.(type) {
	case map[string]json.RawMessage:
		return p, nil
	case json.RawMessage:
		raw = p
	case []byte:
		raw = p
	default:
		b, err := json.Marshal(partial)
		if err != nil {
			return nil, fmt.Errorf("encode patch: %w", err)
		}
		raw = b
	}
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return out, nil
}

// merge overlays partial onto the stored object field by field. Keys listed
// in protected keep their stored value.
func merge(current []byte, partial any, protected ...string) ([]byte, error) {
	base := map[string]json.RawMessage{}
	if len(current) > 0 {
		if err := json.Unmarshal(current, &base); err != nil {
			return nil, fmt.Errorf("decode stored record: %w", err)
		}
	}
	patch, err := fields(partial)
	if err != nil {
		return nil, err
	}
	skip := make(map[string]struct{}, len(protected))
	for _, k := range protected {
		skip[k] = struct{}{}
	}
	for k, v := range patch {
		if _, ok := skip[k]; ok {
			continue
		}
		base[k] = v
	}
	return json.Marshal(base)
}
