package facets

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
)

// Class and member presentation.
const (
	KindNamed       facetapi.Kind = "Named"
	KindPlural      facetapi.Kind = "Plural"
	KindDescribedAs facetapi.Kind = "DescribedAs"
	KindTitle       facetapi.Kind = "Title"
	KindMemberOrder facetapi.Kind = "MemberOrder"
)

// Visibility and usability. The static variants, the session
// variants and the context variants are independent kinds.
const (
	KindHidden             facetapi.Kind = "Hidden"
	KindDisabled           facetapi.Kind = "Disabled"
	KindHiddenForSession   facetapi.Kind = "HiddenForSession"
	KindDisabledForSession facetapi.Kind = "DisabledForSession"
	KindHiddenForContext   facetapi.Kind = "HiddenForContext"
	KindDisabledForContext facetapi.Kind = "DisabledForContext"
)

// Actions and their parameters.
const (
	KindActionInvocation facetapi.Kind = "ActionInvocation"
	KindDebug            facetapi.Kind = "Debug"
	KindExploration      facetapi.Kind = "Exploration"
	KindActionValidation facetapi.Kind = "ActionValidation"
	KindActionDefaults   facetapi.Kind = "ActionDefaults"
	KindActionChoices    facetapi.Kind = "ActionChoices"

	KindParameterDefault      facetapi.Kind = "ParameterDefault"
	KindParameterChoices      facetapi.Kind = "ParameterChoices"
	KindParameterAutoComplete facetapi.Kind = "ParameterAutoComplete"
)

// Properties and collections.
const (
	KindPropertyAccessor facetapi.Kind = "PropertyAccessor"
	KindPropertySetter   facetapi.Kind = "PropertySetter"
	KindPropertyClear    facetapi.Kind = "PropertyClear"
	KindPropertyValidate facetapi.Kind = "PropertyValidate"
	KindPropertyDefault  facetapi.Kind = "PropertyDefault"
	KindPropertyChoices  facetapi.Kind = "PropertyChoices"

	KindCollectionAccessor   facetapi.Kind = "CollectionAccessor"
	KindCollectionAddTo      facetapi.Kind = "CollectionAddTo"
	KindCollectionRemoveFrom facetapi.Kind = "CollectionRemoveFrom"
)
