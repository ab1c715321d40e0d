package request

import (
	"slices"
	"strings"
)

// Value is either a Single or a Multiple.
type Value interface {
	values() []string
}

type Single string

type Multiple []string

func (s Single) values() []string { return []string{string(s)} }

func (m Multiple) values() []string { return m }

// QueryString is the decoded form of everything after the first '?' of a
// request target. Values are kept exactly as they appeared on the wire; no
// percent-decoding is done.
type QueryString struct {
	data map[string]Value
}

// ParseQueryString never fails. Fragments without '=' map to an empty
// value and an empty fragment (as in "a=1&&b=2") is stored under the empty
// key. A repeated key turns its Single into a Multiple in arrival order.
func ParseQueryString(s string) *QueryString {
	qs := &QueryString{data: make(map[string]Value)}

	for _, fragment := range strings.Split(s, "&") {
		key, val, _ := strings.Cut(fragment, "=")
		qs.add(key, val)
	}

	return qs
}

func (qs *QueryString) add(key, val string) {
	switch existing := qs.data[key].(type) {
	case nil:
		qs.data[key] = Single(val)
	case Single:
		qs.data[key] = Multiple{string(existing), val}
	case Multiple:
		qs.data[key] = append(existing, val)
	}
}

// Get returns the value stored for key. A Multiple is a copy.
func (qs *QueryString) Get(key string) (Value, bool) {
	if qs == nil {
		return nil, false
	}
	v, ok := qs.data[key]
	if m, isMultiple := v.(Multiple); isMultiple {
		return slices.Clone(m), true
	}
	return v, ok
}

// First returns the first value stored for key, or "" when key is absent.
func (qs *QueryString) First(key string) string {
	if qs == nil {
		return ""
	}
	v, ok := qs.data[key]
	if !ok {
		return ""
	}
	return v.values()[0]
}

// All returns a copy of every value stored for key in arrival order.
func (qs *QueryString) All(key string) []string {
	if qs == nil {
		return nil
	}
	v, ok := qs.data[key]
	if !ok {
		return nil
	}
	return slices.Clone(v.values())
}

func (qs *QueryString) Len() int {
	if qs == nil {
		return 0
	}
	return len(qs.data)
}

// Keys returns the keys in sorted order.
func (qs *QueryString) Keys() []string {
	if qs == nil {
		return nil
	}
	keys := make([]string, 0, len(qs.data))
	for k := range qs.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
