package headers

import (
	"slices"
	"strings"
)

// Headers maps lowercased field names to values. Only responses carry
// headers; request headers are never parsed.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// Set appends value to an existing field, comma separated.
func (h Headers) Set(key, value string) {
	key = strings.ToLower(key)
	if _, ok := h[key]; ok {
		h[key] += ", " + value
		return
	}
	h[key] = value
}

// SetNew replaces any existing value.
func (h Headers) SetNew(key, value string) {
	key = strings.ToLower(key)
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	key = strings.ToLower(key)
	if v, ok := h[key]; ok {
		return v
	}
	return ""
}

// Keys returns the field names in sorted order so serialized output is
// stable.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
