package factories

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// NewPropertyValidate consumes validate<Property>(<type>) string.
func NewPropertyValidate() FacetFactory {
	return NewConvention(PropertyValidate, facetapi.PropertiesOnly(), naming.Validate,
		All(MemberTypeParam(), Returns(reflection.KindString)),
		MethodFacet(facets.KindPropertyValidate, PropertyValidate),
	)
}

// NewPropertyDefault consumes default<Property>() <type>.
func NewPropertyDefault() FacetFactory {
	return NewConvention(PropertyDefault, facetapi.PropertiesOnly(), naming.Default,
		All(NoParams(), ReturnsMemberType()),
		MethodFacet(facets.KindPropertyDefault, PropertyDefault),
	)
}

// NewPropertyChoices consumes choices<Property>() with collection result.
func NewPropertyChoices() FacetFactory {
	return NewConvention(PropertyChoices, facetapi.PropertiesOnly(), naming.Choices,
		All(NoParams(), Returns(reflection.KindCollection)),
		MethodFacet(facets.KindPropertyChoices, PropertyChoices),
	)
}
