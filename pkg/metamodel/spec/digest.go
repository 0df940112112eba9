package spec

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/utils"
)

type facetDigest struct {
	Kind       facetapi.Kind `json:"kind"`
	Provenance string        `json:"provenance"`
	Fallback   bool          `json:"fallback,omitempty"`
	Value      any           `json:"value,omitempty"`
	Methods    []string      `json:"methods,omitempty"`
	Underlying *facetDigest  `json:"underlying,omitempty"`
}

type memberDigest struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Method     string          `json:"method"`
	Facets     []facetDigest   `json:"facets,omitempty"`
	Parameters [][]facetDigest `json:"parameters,omitempty"`
}

type specDigest struct {
	ID           string         `json:"id"`
	Super        string         `json:"super,omitempty"`
	Facets       []facetDigest  `json:"facets,omitempty"`
	Members      []memberDigest `json:"members,omitempty"`
	Unclassified []string       `json:"unclassified,omitempty"`
}

func digestFor(s *specification) *specDigest {
	d := &specDigest{
		ID:           s.ID(),
		Facets:       facetDigests(s.Facets()),
		Unclassified: s.unclassified,
	}
	if s.super != nil {
		d.Super = s.super.Digest()
	}
	for _, m := range s.members {
		md := memberDigest{
			ID:     m.Identifier(),
			Type:   string(m.FeatureType()),
			Method: m.Method().Key(),
			Facets: facetDigests(m.Facets()),
		}
		for _, p := range m.Parameters() {
			md.Parameters = append(md.Parameters, facetDigests(p.Facets()))
		}
		d.Members = append(d.Members, md)
	}
	return d
}

func facetDigests(list []facetapi.Facet) []facetDigest {
	return utils.TransformSlice(list, func(f facetapi.Facet) facetDigest {
		return *facetDigestFor(f)
	})
}

func facetDigestFor(f facetapi.Facet) *facetDigest {
	if f == nil {
		return nil
	}
	return &facetDigest{
		Kind:       f.Kind(),
		Provenance: f.Provenance(),
		Fallback:   f.IsFallback(),
		Value:      f.Value(),
		Methods:    facetapi.MethodKeys(f),
		Underlying: facetDigestFor(f.Underlying()),
	}
}
