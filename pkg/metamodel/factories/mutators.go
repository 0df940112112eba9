package factories

import (
	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
)

func NewPropertySetter() FacetFactory {
	return NewConvention(PropertySetter, facetapi.PropertiesOnly(), naming.Set,
		All(MemberTypeParam(), ReturnsVoid()),
		MethodFacet(facets.KindPropertySetter, PropertySetter),
	)
}

func NewPropertyClear() FacetFactory {
	return NewConvention(PropertyClear, facetapi.PropertiesOnly(), naming.Clear,
		All(NoParams(), ReturnsVoid()),
		MethodFacet(facets.KindPropertyClear, PropertyClear),
	)
}

func NewCollectionAddTo() FacetFactory {
	return NewConvention(CollectionAddTo, facetapi.CollectionsOnly(), naming.AddTo,
		All(ParamCount(1), ReturnsVoid()),
		MethodFacet(facets.KindCollectionAddTo, CollectionAddTo),
	)
}

func NewCollectionRemoveFrom() FacetFactory {
	return NewConvention(CollectionRemoveFrom, facetapi.CollectionsOnly(), naming.RemoveFrom,
		All(ParamCount(1), ReturnsVoid()),
		MethodFacet(facets.KindCollectionRemoveFrom, CollectionRemoveFrom),
	)
}

////////////////////////////////////////////////////////////////////////////////

type postsEvent struct {
	FactoryBase
	annotation string
	kind       facetapi.Kind
}

var _ FacetFactory = (*postsEvent)(nil)

// NewPostsPropertyChangedEvent decorates the setter of a property
// annotated with PostsChangedEvent.
func NewPostsPropertyChangedEvent() FacetFactory {
	return &postsEvent{
		FactoryBase: NewFactoryBase(PostsPropertyChangedEvent, facetapi.PropertiesOnly()),
		annotation:  applib.PostsChangedEvent,
		kind:        facets.KindPropertySetter,
	}
}

// NewPostsCollectionAddedToEvent decorates the add-to mutator of a
// collection annotated with PostsAddedToEvent.
func NewPostsCollectionAddedToEvent() FacetFactory {
	return &postsEvent{
		FactoryBase: NewFactoryBase(PostsCollectionAddedToEvent, facetapi.CollectionsOnly()),
		annotation:  applib.PostsAddedToEvent,
		kind:        facets.KindCollectionAddTo,
	}
}

func (f *postsEvent) Process(ctx *ProcessMethodContext) error {
	ev, ok := ctx.Method.Annotations().Get(f.annotation)
	if !ok {
		return nil
	}
	if !ctx.Holder.ContainsFacet(f.kind) {
		log.Debug("{{member}}: no {{kind}} facet to decorate with event {{event}}", "member", ctx.Holder, "kind", f.kind, "event", ev)
		return nil
	}
	return ctx.Holder.AddFacet(facets.NewPostsEvent(f.kind, f.Name(), ev))
}
