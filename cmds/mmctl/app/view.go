package app

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/spec"
	"github.com/mandelsoft/facets/pkg/utils"
)

type List struct {
	Items  []*Specification `json:"items,omitempty"`
	Failed []Failure        `json:"failed,omitempty"`
}

type Failure struct {
	Class string `json:"class"`
	Error string `json:"error"`
}

type Specification struct {
	ID           string    `json:"id"`
	Super        string    `json:"super,omitempty"`
	Digest       string    `json:"digest"`
	Facets       []Facet   `json:"facets,omitempty"`
	Members      []*Member `json:"members,omitempty"`
	Unclassified []string  `json:"unclassified,omitempty"`
}

type Member struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Method     string    `json:"method"`
	Facets     []Facet   `json:"facets,omitempty"`
	Parameters [][]Facet `json:"parameters,omitempty"`
}

type Facet struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

func ViewFor(s spec.Specification) *Specification {
	v := &Specification{
		ID:           s.ID(),
		Digest:       s.Digest(),
		Facets:       facetViews(s.Facets()),
		Unclassified: s.Unclassified(),
	}
	if s.Super() != nil {
		v.Super = s.Super().ID()
	}
	for _, m := range s.Members() {
		mv := &Member{
			ID:     m.Identifier(),
			Type:   string(m.FeatureType()),
			Method: m.Method().Key(),
			Facets: facetViews(m.Facets()),
		}
		for _, p := range m.Parameters() {
			mv.Parameters = append(mv.Parameters, facetViews(p.Facets()))
		}
		v.Members = append(v.Members, mv)
	}
	return v
}

func facetViews(list []facetapi.Facet) []Facet {
	return utils.TransformSlice(list, func(f facetapi.Facet) Facet {
		return Facet{Kind: f.Kind().String(), Description: spec.DescribeFacet(f)}
	})
}
