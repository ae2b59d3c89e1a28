package enc

import (
	"sort"
	"strings"
	"sync"
)

// Registry is a read-only lookup of encodings by name
type Registry struct {
	encodings []Encoding
	byName    map[string]Encoding
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry of all built-in encodings
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(
			Base16,
			Base32,
			Base32Hex,
			CrockfordBase32,
			ZBase32,
			Base64,
			Base64URL,
			Base58,
			RippleBase58,
			Base91,
		)
	})
	return defaultRegistry
}

// NewRegistry creates a registry of the given encodings. If two encodings share a name, the first one wins.
func NewRegistry(encodings ...Encoding) *Registry {
	r := &Registry{
		byName: make(map[string]Encoding),
	}
	for _, e := range encodings {
		key := normalizeName(e.Name())
		if _, ok := r.byName[key]; ok {
			continue
		}
		r.byName[key] = e
		r.encodings = append(r.encodings, e)
	}
	return r
}

// normalizeName makes lookups forgiving: "Base64-URL", "base64url" and "BASE64_URL" are the same name
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// Lookup finds an encoding by its name
func (r *Registry) Lookup(name string) (Encoding, bool) {
	e, ok := r.byName[normalizeName(name)]
	return e, ok
}

// All returns the registered encodings in registration order
func (r *Registry) All() []Encoding {
	res := make([]Encoding, len(r.encodings))
	copy(res, r.encodings)
	return res
}

// Names returns the names of the registered encodings, sorted alphabetically
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.encodings))
	for _, e := range r.encodings {
		res = append(res, e.Name())
	}
	sort.Strings(res)
	return res
}
