package validator

import (
	"encoding/json"
)

// Claims is the decoded payload of a verified token. It is read-only: the
// accessors never hand out the underlying map.
type Claims struct {
	values map[string]any
}

// NewClaims builds Claims from a decoded payload. The map is deep-copied.
func NewClaims(values map[string]any) Claims {
	return Claims{values: cloneMap(values)}
}

// Subject returns the "sub" claim, or "" when it is absent or not a string.
func (c Claims) Subject() string {
	sub, _ := c.values["sub"].(string)
	return sub
}

// Get returns the named claim. Composite values are copies.
func (c Claims) Get(name string) (any, bool) {
	v, ok := c.values[name]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Map returns a deep copy of all claims.
func (c Claims) Map() map[string]any {
	return cloneMap(c.values)
}

// Len returns the number of claims.
func (c Claims) Len() int {
	return len(c.values)
}

// MarshalJSON encodes the claims as a JSON object.
func (c Claims) MarshalJSON() ([]byte, error) {
	if c.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.values)
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
