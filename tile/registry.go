package tile

import (
	"fmt"
	"log"
	"sort"

	"github.com/milk9111/levelgeo/common"
)

// DuplicateCodeError is returned when two definitions share a code.
type DuplicateCodeError struct {
	Code  rune
	First string
	Again string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("tile: duplicate code %q (%q and %q)", e.Code, e.First, e.Again)
}

// Registry maps tile codes to their types.
type Registry struct {
	types map[rune]*Type
}

// NewRegistry builds a registry from defs, loading one texture per
// definition. Duplicate codes are rejected.
func NewRegistry(defs []Def, loader common.ImageLoader) (*Registry, error) {
	r := &Registry{types: make(map[rune]*Type, len(defs))}
	for i, def := range defs {
		t, err := NewType(def, loader)
		if err != nil {
			return nil, fmt.Errorf("tile: definition %d: %w", i, err)
		}
		if prev, ok := r.types[t.code]; ok {
			log.Printf("tile: duplicate code %q in definition %d", t.code, i)
			return nil, &DuplicateCodeError{Code: t.code, First: prev.name, Again: t.name}
		}
		r.types[t.code] = t
	}
	return r, nil
}

// Lookup returns the type registered for code.
func (r *Registry) Lookup(code rune) (*Type, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.types[code]
	return t, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.types)
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []rune {
	if r == nil {
		return nil
	}
	out := make([]rune, 0, len(r.types))
	for c := range r.types {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
