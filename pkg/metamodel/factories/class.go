package factories

import (
	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
)

type objectNamed struct {
	FactoryBase
}

var _ ClassFacetFactory = (*objectNamed)(nil)

// NewObjectNamed provides the names of a class. The humanized type
// name is used as fallback for the Named annotation, the plural is
// derived from the name if not annotated.
func NewObjectNamed() ClassFacetFactory {
	return &objectNamed{NewFactoryBase(ObjectNamed, facetapi.ObjectsOnly())}
}

func (f *objectNamed) ProcessClass(ctx *ProcessClassContext) error {
	an := ctx.Class.Annotations()

	name := naming.Humanize(ctx.Class.ShortName())
	err := ctx.Holder.AddFacet(facets.NewNamed(f.Name(), name, facetapi.Fallback()))
	if err != nil {
		return err
	}
	if v, ok := an.Get(applib.Named); ok {
		name = v
		if err := ctx.Holder.AddFacet(facets.NewNamed(f.Name(), v)); err != nil {
			return err
		}
	}

	if v, ok := an.Get(applib.Plural); ok {
		err = ctx.Holder.AddFacet(facets.NewPlural(f.Name(), v))
	} else {
		err = ctx.Holder.AddFacet(facets.NewPlural(f.Name(), naming.Pluralize(name), facetapi.Fallback()))
	}
	if err != nil {
		return err
	}

	if v, ok := an.Get(applib.DescribedAs); ok {
		return ctx.Holder.AddFacet(facets.NewDescribedAs(f.Name(), v))
	}
	return nil
}

type title struct {
	FactoryBase
}

var (
	_ ClassFacetFactory = (*title)(nil)
	_ PrefixedFactory   = (*title)(nil)
)

// NewTitle consumes the title() method of a class.
func NewTitle() ClassFacetFactory {
	return &title{NewFactoryBase(Title, facetapi.ObjectsOnly())}
}

func (f *title) Prefixes() []string {
	return []string{naming.Title}
}

func (f *title) ProcessClass(ctx *ProcessClassContext) error {
	m := ctx.Class.Method(naming.Title)
	if m == nil {
		m = ctx.Class.Method(naming.Capitalize(naming.Title))
	}
	if m == nil || len(m.Params()) != 0 || m.Result().Kind != reflection.KindString {
		return nil
	}
	if err := ctx.Holder.AddFacet(facets.NewMethodFacet(facets.KindTitle, f.Name(), m)); err != nil {
		return err
	}
	ctx.Remover.RemoveMethod(m)
	return nil
}
