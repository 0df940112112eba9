package facetapi

import (
	"reflect"
	"slices"

	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Kind identifies the semantic kind of a facet. A holder keeps
// at most one active facet per kind.
type Kind string

func (k Kind) String() string {
	return string(k)
}

// Composition describes how a facet is installed on a
// holder already containing a facet of the same kind.
type Composition int

const (
	// Conflict rejects the installation.
	Conflict Composition = iota
	// Override replaces the installed facet.
	Override
	// Wrap installs the facet as decorator with the installed
	// facet as underlying.
	Wrap
)

func (c Composition) String() string {
	switch c {
	case Override:
		return "override"
	case Wrap:
		return "wrap"
	default:
		return "conflict"
	}
}

type Facet interface {
	Kind() Kind
	// Provenance is the name of the factory installing the facet.
	Provenance() string
	// IsFallback marks facets used only if no other
	// facet of the kind is provided.
	IsFallback() bool
	Composition() Composition

	Underlying() Facet
	SetUnderlying(Facet)

	// Value is the payload of the facet. It is used for equivalence
	// checks and digests and must be serializable.
	Value() any
	// Methods returns the methods bound by the facet.
	Methods() []reflection.Method
}

type FacetOption func(b *FacetBase)

// Fallback marks a facet as fallback.
func Fallback() FacetOption {
	return func(b *FacetBase) {
		b.fallback = true
	}
}

func WithComposition(c Composition) FacetOption {
	return func(b *FacetBase) {
		b.composition = c
	}
}

// FacetBase provides the common attributes of facets.
// It is intended to be embedded into concrete facet types.
type FacetBase struct {
	kind        Kind
	provenance  string
	fallback    bool
	composition Composition
	underlying  Facet
}

func NewFacetBase(kind Kind, provenance string, opts ...FacetOption) FacetBase {
	b := FacetBase{kind: kind, provenance: provenance}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b *FacetBase) Kind() Kind {
	return b.kind
}

func (b *FacetBase) Provenance() string {
	return b.provenance
}

func (b *FacetBase) IsFallback() bool {
	return b.fallback
}

func (b *FacetBase) Composition() Composition {
	return b.composition
}

func (b *FacetBase) Underlying() Facet {
	return b.underlying
}

func (b *FacetBase) SetUnderlying(f Facet) {
	b.underlying = f
}

func (b *FacetBase) Methods() []reflection.Method {
	return nil
}

// Equivalent checks whether two facets would have the
// same effect.
func Equivalent(a, b Facet) bool {
	if utils.IsNil(a) || utils.IsNil(b) {
		return utils.IsNil(a) == utils.IsNil(b)
	}
	if a.Kind() != b.Kind() || a.Provenance() != b.Provenance() {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !slices.Equal(MethodKeys(a), MethodKeys(b)) {
		return false
	}
	return reflect.DeepEqual(a.Value(), b.Value())
}

// MethodKeys returns the keys of the methods bound by a facet.
func MethodKeys(f Facet) []string {
	return utils.TransformSlice(f.Methods(), reflection.MethodKey)
}

// Chain returns the facet followed by its chain of
// underlying facets.
func Chain(f Facet) []Facet {
	var r []Facet
	for !utils.IsNil(f) {
		r = append(r, f)
		f = f.Underlying()
	}
	return r
}
