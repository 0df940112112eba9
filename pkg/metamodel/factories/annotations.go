package factories

import (
	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
)

// annotation installs a facet for a member annotation. Annotations
// are explicit declarations and override facets derived by
// conventions.
type annotation struct {
	FactoryBase
	annotation string
	create     func(provenance, value string) (facetapi.Facet, error)
}

var _ FacetFactory = (*annotation)(nil)

func (f *annotation) Process(ctx *ProcessMethodContext) error {
	v, ok := ctx.Method.Annotations().Get(f.annotation)
	if !ok {
		return nil
	}
	facet, err := f.create(f.Name(), v)
	if err != nil {
		return facetapi.MetaModelErrorf("%s: invalid %s annotation: %s", ctx.Holder, f.annotation, err)
	}
	return ctx.Holder.AddFacet(facet)
}

func newAnnotation(name, an string, create func(provenance, value string) (facetapi.Facet, error)) FacetFactory {
	return &annotation{
		FactoryBase: NewFactoryBase(name, facetapi.Members()),
		annotation:  an,
		create:      create,
	}
}

func override() facetapi.FacetOption {
	return facetapi.WithComposition(facetapi.Override)
}

func NewNamedAnnotation() FacetFactory {
	return newAnnotation(NamedAnnotation, applib.Named, func(p, v string) (facetapi.Facet, error) {
		return facets.NewNamed(p, v, override()), nil
	})
}

func NewDescribedAsAnnotation() FacetFactory {
	return newAnnotation(DescribedAsAnnotation, applib.DescribedAs, func(p, v string) (facetapi.Facet, error) {
		return facets.NewDescribedAs(p, v, override()), nil
	})
}

func NewHiddenAnnotation() FacetFactory {
	return newAnnotation(HiddenAnnotation, applib.Hidden, func(p, v string) (facetapi.Facet, error) {
		w, err := applib.ParseWhen(v)
		if err != nil {
			return nil, err
		}
		return facets.NewHidden(p, w, override()), nil
	})
}

func NewDisabledAnnotation() FacetFactory {
	return newAnnotation(DisabledAnnotation, applib.Disabled, func(p, v string) (facetapi.Facet, error) {
		w, err := applib.ParseWhen(v)
		if err != nil {
			return nil, err
		}
		return facets.NewDisabled(p, w, override()), nil
	})
}

func NewMemberOrderAnnotation() FacetFactory {
	return newAnnotation(MemberOrderAnnotation, applib.MemberOrder, func(p, v string) (facetapi.Facet, error) {
		return facets.NewMemberOrder(p, v), nil
	})
}
