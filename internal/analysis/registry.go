package analysis

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Registry manages normalizers by name. Names that are not registered are
// parsed as BCP 47 language tags and resolved to a LocaleLower.
type Registry struct {
	normalizers map[string]Normalizer
}

// NewRegistry creates a Registry with the built-in normalizers registered.
func NewRegistry() *Registry {
	r := &Registry{
		normalizers: make(map[string]Normalizer),
	}
	r.normalizers["invariant"] = InvariantLower
	return r
}

// Get returns the normalizer registered under name, or a locale normalizer
// when name is a valid language tag. The empty name means "invariant".
func (r *Registry) Get(name string) (Normalizer, error) {
	if name == "" {
		name = "invariant"
	}
	if n, ok := r.normalizers[name]; ok {
		return n, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("unknown normalizer: %q (want one of %s, or a language tag)",
			name, strings.Join(r.Names(), ", "))
	}
	return NewLocaleLower(tag), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.normalizers))
	for name := range r.normalizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
