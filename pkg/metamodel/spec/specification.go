package spec

import (
	"sync"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

type specification struct {
	facetapi.FacetHolder
	lock sync.Mutex

	class   reflection.Class
	super   Specification
	state   State
	buildid string

	members      []*Member
	byID         map[string]*Member
	unclassified []string
	digest       string
}

var _ Specification = (*specification)(nil)

func newSpecification(c reflection.Class, super Specification, buildid string) *specification {
	return &specification{
		FacetHolder: facetapi.NewFacetHolder("class " + c.Name()),
		class:       c,
		super:       super,
		buildid:     buildid,
		byID:        map[string]*Member{},
	}
}

func (s *specification) ID() string {
	return s.class.Name()
}

func (s *specification) Class() reflection.Class {
	return s.class
}

func (s *specification) Super() Specification {
	return s.super
}

func (s *specification) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state
}

func (s *specification) setState(state State) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.state = state
}

func (s *specification) BuildID() string {
	return s.buildid
}

func (s *specification) Members() []*Member {
	return append([]*Member(nil), s.members...)
}

func (s *specification) Member(id string) *Member {
	return s.byID[id]
}

func (s *specification) membersOf(ft facetapi.FeatureType) []*Member {
	return utils.FilterSlice(s.members, func(m *Member) bool {
		return m.FeatureType() == ft
	})
}

func (s *specification) memberOf(ft facetapi.FeatureType, id string) *Member {
	m := s.byID[id]
	if m == nil || m.FeatureType() != ft {
		return nil
	}
	return m
}

func (s *specification) Actions() []*Member {
	return s.membersOf(facetapi.FeatureAction)
}

func (s *specification) Action(id string) *Member {
	return s.memberOf(facetapi.FeatureAction, id)
}

func (s *specification) Properties() []*Member {
	return s.membersOf(facetapi.FeatureProperty)
}

func (s *specification) Property(id string) *Member {
	return s.memberOf(facetapi.FeatureProperty, id)
}

func (s *specification) Collections() []*Member {
	return s.membersOf(facetapi.FeatureCollection)
}

func (s *specification) Collection(id string) *Member {
	return s.memberOf(facetapi.FeatureCollection, id)
}

func (s *specification) LookupFacet(kind facetapi.Kind) facetapi.Facet {
	if f := s.GetFacet(kind); f != nil {
		return f
	}
	if s.super != nil {
		return s.super.LookupFacet(kind)
	}
	return nil
}

func (s *specification) Unclassified() []string {
	return append([]string(nil), s.unclassified...)
}

func (s *specification) Digest() string {
	return s.digest
}

func (s *specification) freeze() {
	s.FacetHolder.Freeze()
	for _, m := range s.members {
		m.Freeze()
	}
}
