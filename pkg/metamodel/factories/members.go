package factories

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
)

type actionInvocation struct {
	FactoryBase
}

var (
	_ FacetFactory    = (*actionInvocation)(nil)
	_ PrefixedFactory = (*actionInvocation)(nil)
)

// NewActionInvocation installs the invocation facet of an action
// together with the fallback name and the marker of debug and
// exploration actions.
func NewActionInvocation() FacetFactory {
	return &actionInvocation{NewFactoryBase(ActionInvocation, facetapi.ActionsOnly())}
}

func (f *actionInvocation) Prefixes() []string {
	return naming.MarkerPrefixes
}

func (f *actionInvocation) Process(ctx *ProcessMethodContext) error {
	h := ctx.Holder
	err := h.AddFacet(facets.NewActionInvocation(f.Name(), ctx.Method, ctx.Class))
	if err != nil {
		return err
	}

	marker, name := naming.StripMarker(ctx.Method.Name())
	switch marker {
	case naming.Debug:
		err = h.AddFacet(facets.NewMarker(facets.KindDebug, f.Name()))
	case naming.Exploration:
		err = h.AddFacet(facets.NewMarker(facets.KindExploration, f.Name()))
	}
	if err != nil {
		return err
	}
	err = h.AddFacet(facets.NewNamed(f.Name(), naming.Humanize(name), facetapi.Fallback()))
	if err != nil {
		return err
	}
	ctx.Remover.RemoveMethod(ctx.Method)
	return nil
}

type accessor struct {
	FactoryBase
	kind facetapi.Kind
}

var (
	_ FacetFactory    = (*accessor)(nil)
	_ PrefixedFactory = (*accessor)(nil)
)

// NewPropertyAccessor installs the accessor facet of a property.
func NewPropertyAccessor() FacetFactory {
	return &accessor{NewFactoryBase(PropertyAccessor, facetapi.PropertiesOnly()), facets.KindPropertyAccessor}
}

// NewCollectionAccessor installs the accessor facet of a collection.
func NewCollectionAccessor() FacetFactory {
	return &accessor{NewFactoryBase(CollectionAccessor, facetapi.CollectionsOnly()), facets.KindCollectionAccessor}
}

func (f *accessor) Prefixes() []string {
	return []string{naming.Get}
}

func (f *accessor) Process(ctx *ProcessMethodContext) error {
	h := ctx.Holder
	err := h.AddFacet(facets.NewMethodFacet(f.kind, f.Name(), ctx.Method))
	if err != nil {
		return err
	}
	err = h.AddFacet(facets.NewNamed(f.Name(), naming.Humanize(h.Identifier()), facetapi.Fallback()))
	if err != nil {
		return err
	}
	ctx.Remover.RemoveMethod(ctx.Method)
	return nil
}
