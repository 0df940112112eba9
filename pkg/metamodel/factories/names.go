package factories

// Names of the built-in factories.
const (
	ObjectNamed = "ObjectNamed"
	Title       = "Title"

	ActionInvocation   = "ActionInvocation"
	PropertyAccessor   = "PropertyAccessor"
	CollectionAccessor = "CollectionAccessor"

	PropertySetter       = "PropertySetter"
	PropertyClear        = "PropertyClear"
	CollectionAddTo      = "CollectionAddTo"
	CollectionRemoveFrom = "CollectionRemoveFrom"

	PostsPropertyChangedEvent   = "PostsPropertyChangedEvent"
	PostsCollectionAddedToEvent = "PostsCollectionAddedToEvent"

	ActionValidation            = "ActionValidation"
	ActionDefaults              = "ActionDefaults"
	ActionChoices               = "ActionChoices"
	ActionParameterDefaults     = "ActionParameterDefaults"
	ActionParameterChoices      = "ActionParameterChoices"
	ActionParameterAutoComplete = "ActionParameterAutoComplete"

	PropertyValidate = "PropertyValidate"
	PropertyDefault  = "PropertyDefault"
	PropertyChoices  = "PropertyChoices"

	NamedStaticMethod       = "NamedStaticMethod"
	DescribedAsStaticMethod = "DescribedAsStaticMethod"
	HiddenStaticMethod      = "HiddenStaticMethod"
	DisabledStaticMethod    = "DisabledStaticMethod"
	HideForSession          = "HideForSession"
	DisableForSession       = "DisableForSession"
	HideForContext          = "HideForContext"
	DisableForContext       = "DisableForContext"

	NamedAnnotation       = "NamedAnnotation"
	DescribedAsAnnotation = "DescribedAsAnnotation"
	HiddenAnnotation      = "HiddenAnnotation"
	DisabledAnnotation    = "DisabledAnnotation"
	MemberOrderAnnotation = "MemberOrderAnnotation"
)
