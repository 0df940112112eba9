package factories

import (
	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// NewNamedStaticMethod evaluates the static name<Member>() method.
func NewNamedStaticMethod() FacetFactory {
	return NewConvention(NamedStaticMethod, facetapi.Members(), naming.Name,
		All(IsStatic(), NoParams(), Returns(reflection.KindString)),
		staticString(facets.KindNamed, NamedStaticMethod),
	)
}

// NewDescribedAsStaticMethod evaluates the static description<Member>() method.
func NewDescribedAsStaticMethod() FacetFactory {
	return NewConvention(DescribedAsStaticMethod, facetapi.Members(), naming.Description,
		All(IsStatic(), NoParams(), Returns(reflection.KindString)),
		staticString(facets.KindDescribedAs, DescribedAsStaticMethod),
	)
}

// NewHiddenStaticMethod evaluates the static alwaysHide<Member>() method.
// Only a true result installs a facet, the method is consumed anyway.
func NewHiddenStaticMethod() FacetFactory {
	return NewConvention(HiddenStaticMethod, facetapi.Members(), naming.AlwaysHide,
		All(IsStatic(), NoParams(), Returns(reflection.KindBool)),
		staticFlag(facets.KindHidden, HiddenStaticMethod),
	)
}

// NewDisabledStaticMethod evaluates the static protect<Member>() method.
// Only a true result installs a facet, the method is consumed anyway.
func NewDisabledStaticMethod() FacetFactory {
	return NewConvention(DisabledStaticMethod, facetapi.Members(), naming.Protect,
		All(IsStatic(), NoParams(), Returns(reflection.KindBool)),
		staticFlag(facets.KindDisabled, DisabledStaticMethod),
	)
}

// NewHideForSession consumes hide<Member>(User) bool.
func NewHideForSession() FacetFactory {
	return NewConvention(HideForSession, facetapi.Members(), naming.Hide,
		All(ParamKinds(reflection.KindUser), Returns(reflection.KindBool)),
		MethodFacet(facets.KindHiddenForSession, HideForSession),
	)
}

// NewDisableForSession consumes disable<Member>(User) string.
func NewDisableForSession() FacetFactory {
	return NewConvention(DisableForSession, facetapi.Members(), naming.Disable,
		All(ParamKinds(reflection.KindUser), Returns(reflection.KindString)),
		MethodFacet(facets.KindDisabledForSession, DisableForSession),
	)
}

// NewHideForContext consumes hide<Member>() bool.
func NewHideForContext() FacetFactory {
	return NewConvention(HideForContext, facetapi.Members(), naming.Hide,
		All(NoParams(), Returns(reflection.KindBool)),
		MethodFacet(facets.KindHiddenForContext, HideForContext),
	)
}

// NewDisableForContext consumes disable<Member>() string. For actions
// the method may also take the parameters of the action.
func NewDisableForContext() FacetFactory {
	return NewConvention(DisableForContext, facetapi.Members(), naming.Disable,
		All(Any(NoParams(), All(HasParams(), SameParams())), Returns(reflection.KindString)),
		MethodFacet(facets.KindDisabledForContext, DisableForContext),
	)
}

func staticString(kind facetapi.Kind, provenance string) Builder {
	return func(ctx *ProcessMethodContext, m reflection.Method) (facetapi.Facet, error) {
		v, err := invokeStatic(m)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, facetapi.MetaModelErrorf("%s: %s returns %T instead of string", ctx.Holder, m.Name(), v)
		}
		return facets.NewValueFacet(kind, provenance, s), nil
	}
}

func staticFlag(kind facetapi.Kind, provenance string) Builder {
	return func(ctx *ProcessMethodContext, m reflection.Method) (facetapi.Facet, error) {
		v, err := invokeStatic(m)
		if err != nil {
			return nil, err
		}
		b, ok := v.(bool)
		if !ok {
			return nil, facetapi.MetaModelErrorf("%s: %s returns %T instead of bool", ctx.Holder, m.Name(), v)
		}
		if !b {
			return nil, nil
		}
		return facets.NewValueFacet(kind, provenance, applib.Always), nil
	}
}
