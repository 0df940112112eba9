package spec

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
)

func (s *specification) Dump(w io.Writer) {
	fmt.Fprintf(w, "class %s (%s)\n", s.ID(), s.State())
	if s.super != nil {
		fmt.Fprintf(w, "  super: %s\n", s.super.ID())
	}
	if len(s.Facets()) > 0 {
		fmt.Fprintf(w, "  facets:\n")
		dumpFacets(w, "    ", s.Facets())
	}
	for _, ft := range []facetapi.FeatureType{facetapi.FeatureProperty, facetapi.FeatureCollection, facetapi.FeatureAction} {
		members := s.membersOf(ft)
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", pluralFeature(ft))
		for _, m := range members {
			fmt.Fprintf(w, "    %s (%s)\n", m.Identifier(), m.Type())
			dumpFacets(w, "      ", m.Facets())
			for _, p := range m.Parameters() {
				fmt.Fprintf(w, "      parameter %d (%s)\n", p.Index(), p.Type())
				dumpFacets(w, "        ", p.Facets())
			}
		}
	}
	if len(s.unclassified) > 0 {
		fmt.Fprintf(w, "  unclassified: %s\n", strings.Join(s.unclassified, ", "))
	}
}

func pluralFeature(ft facetapi.FeatureType) string {
	switch ft {
	case facetapi.FeatureProperty:
		return "properties"
	default:
		return string(ft) + "s"
	}
}

func dumpFacets(w io.Writer, gap string, list []facetapi.Facet) {
	for _, f := range list {
		fmt.Fprintf(w, "%s%s: %s\n", gap, f.Kind(), DescribeFacet(f))
	}
}

// DescribeFacet provides a short description of a facet
// including its decorator chain.
func DescribeFacet(f facetapi.Facet) string {
	var parts []string
	if v := f.Value(); v != nil {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	if keys := facetapi.MethodKeys(f); len(keys) > 0 {
		parts = append(parts, strings.Join(keys, ","))
	}
	parts = append(parts, "["+f.Provenance())
	if f.IsFallback() {
		parts[len(parts)-1] += ", fallback"
	}
	parts[len(parts)-1] += "]"
	s := strings.Join(parts, " ")
	if u := f.Underlying(); u != nil {
		s += " -> " + DescribeFacet(u)
	}
	return s
}
