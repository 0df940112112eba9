package factories

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// NewActionValidation consumes validate<Action>(<action params>) string.
func NewActionValidation() FacetFactory {
	return NewConvention(ActionValidation, facetapi.ActionsOnly(), naming.Validate,
		All(SameParams(), Returns(reflection.KindString)),
		MethodFacet(facets.KindActionValidation, ActionValidation),
	)
}

// NewActionDefaults consumes default<Action>() providing defaults
// for all parameters.
func NewActionDefaults() FacetFactory {
	return NewConvention(ActionDefaults, facetapi.ActionsOnly(), naming.Default,
		All(HasParams(), NoParams(), Returns(reflection.KindCollection)),
		MethodFacet(facets.KindActionDefaults, ActionDefaults),
	).WithCheck(noParameterFacet(facets.KindParameterDefault))
}

// NewActionChoices consumes choices<Action>() providing choices
// for all parameters.
func NewActionChoices() FacetFactory {
	return NewConvention(ActionChoices, facetapi.ActionsOnly(), naming.Choices,
		All(HasParams(), NoParams(), Returns(reflection.KindCollection)),
		MethodFacet(facets.KindActionChoices, ActionChoices),
	).WithCheck(noParameterFacet(facets.KindParameterChoices))
}

// NewActionParameterDefaults consumes default<N><Action>() providing
// the default for parameter N.
func NewActionParameterDefaults() FacetFactory {
	return NewNumberedConvention(ActionParameterDefaults, naming.Default,
		func(ctx *ProcessMethodContext, p *facetapi.Parameter, m reflection.Method) bool {
			return len(m.Params()) == 0 && m.Result() == p.Type()
		},
		MethodFacet(facets.KindParameterDefault, ActionParameterDefaults),
	).WithCheck(noActionFacet(facets.KindActionDefaults))
}

// NewActionParameterChoices consumes choices<N><Action>() providing
// the choices for parameter N.
func NewActionParameterChoices() FacetFactory {
	return NewNumberedConvention(ActionParameterChoices, naming.Choices,
		func(ctx *ProcessMethodContext, p *facetapi.Parameter, m reflection.Method) bool {
			return len(m.Params()) == 0 && m.Result().Kind == reflection.KindCollection
		},
		MethodFacet(facets.KindParameterChoices, ActionParameterChoices),
	).WithCheck(noActionFacet(facets.KindActionChoices))
}

// NewActionParameterAutoComplete consumes autoComplete<N><Action>(string)
// providing matching values for parameter N.
func NewActionParameterAutoComplete() FacetFactory {
	return NewNumberedConvention(ActionParameterAutoComplete, naming.AutoComplete,
		func(ctx *ProcessMethodContext, p *facetapi.Parameter, m reflection.Method) bool {
			return ParamKinds(reflection.KindString)(ctx, m) && m.Result().Kind == reflection.KindCollection
		},
		MethodFacet(facets.KindParameterAutoComplete, ActionParameterAutoComplete),
	)
}

// noParameterFacet rejects whole action support methods if a
// parameter already got a facet by a parameter specific convention.
func noParameterFacet(kind facetapi.Kind) Check {
	return func(ctx *ProcessMethodContext, m reflection.Method) error {
		for _, p := range ctx.Holder.Parameters() {
			if f := p.GetFacet(kind); f != nil {
				return facetapi.MetaModelErrorf("%s: %s conflicts with %s facet of parameter %d (installed by %s)",
					ctx.Holder, m.Name(), kind, p.Index(), f.Provenance())
			}
		}
		return nil
	}
}

// noActionFacet rejects parameter specific support methods if the
// action already got a facet by a whole action convention.
func noActionFacet(kind facetapi.Kind) Check {
	return func(ctx *ProcessMethodContext, m reflection.Method) error {
		if f := ctx.Holder.GetFacet(kind); f != nil {
			return facetapi.MetaModelErrorf("%s: %s conflicts with %s facet (installed by %s)",
				ctx.Holder, m.Name(), kind, f.Provenance())
		}
		return nil
	}
}
