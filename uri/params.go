package uri

import (
	"maps"
	"slices"
)

// Params maps a parameter key to its value.
// Keys are case-sensitive and compared as is.
type Params map[string]string

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the keys in ascending order.
func (p Params) Keys() []string { return slices.Sorted(maps.Keys(p)) }

// Clone returns a copy of the map. Clone of a nil map is nil.
func (p Params) Clone() Params { return maps.Clone(p) }
