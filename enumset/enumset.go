// Package enumset provides a tiny string-enum factory: a read-only
// mapping built from a set of keys where every key maps to itself.
// It suits wire formats and config files that name states by string
// and want a single declared source of truth for the valid values.
package enumset

import (
	"errors"
	"sort"
)

// ErrUnknownKey indicates a lookup for a key the set was not built
// with.
var ErrUnknownKey = errors.New("unknown key")

// Set maps each of its keys to itself.
type Set map[string]string

// FromKeys builds a Set where every key maps to itself. Duplicate keys
// collapse.
func FromKeys(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = k
	}
	return s
}

// Get returns the value for key, which is always the key itself, or
// ErrUnknownKey when the set was not built with it.
func (s Set) Get(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", ErrUnknownKey
	}
	return v, nil
}

// Has reports whether key is a member of the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the members in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
