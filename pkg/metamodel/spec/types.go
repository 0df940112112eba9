package spec

import (
	"errors"
	"fmt"
	"io"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/reflection"
)

var (
	ErrCyclicHierarchy = fmt.Errorf("%w: cyclic class hierarchy", facetapi.ErrMetaModel)
	ErrShutdown        = errors.New("specification loader is shut down")
)

type State int

const (
	Unbuilt State = iota
	Building
	Built
	Failed
)

func (s State) String() string {
	switch s {
	case Building:
		return "Building"
	case Built:
		return "Built"
	case Failed:
		return "Failed"
	default:
		return "Unbuilt"
	}
}

// Member is a class member (action, property or collection) of
// a specification.
type Member struct {
	*facetapi.FacetedMethod
	distance int
}

// Distance is the distance of the declaring class of the member
// in the class hierarchy (0 for the specified class).
func (m *Member) Distance() int {
	return m.distance
}

func (m *Member) DeclaringClass() reflection.Class {
	return m.Method().DeclaringClass()
}

// Specification is the assembled metamodel of a class.
// The facets of a built specification are immutable.
type Specification interface {
	// FacetHolder provides the class level facets.
	facetapi.FacetHolder

	ID() string
	Class() reflection.Class
	Super() Specification
	State() State
	// BuildID identifies the build pass in log output.
	BuildID() string

	Members() []*Member
	Member(id string) *Member
	Actions() []*Member
	Action(id string) *Member
	Properties() []*Member
	Property(id string) *Member
	Collections() []*Member
	Collection(id string) *Member

	// LookupFacet looks up a class level facet including the
	// supertype specifications.
	LookupFacet(kind facetapi.Kind) facetapi.Facet

	// Unclassified lists support methods not consumed
	// by any convention.
	Unclassified() []string

	Digest() string
	Dump(w io.Writer)
}
