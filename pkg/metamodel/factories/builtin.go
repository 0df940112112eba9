package factories

// Builtin returns new instances of all built-in factories in
// their processing order. Class factories come first, followed by
// the member identifying factories, mutators, decorators, support
// method conventions and annotations.
func Builtin() []FacetFactory {
	return []FacetFactory{
		NewObjectNamed(),
		NewTitle(),

		NewActionInvocation(),
		NewPropertyAccessor(),
		NewCollectionAccessor(),

		NewPropertySetter(),
		NewPropertyClear(),
		NewCollectionAddTo(),
		NewCollectionRemoveFrom(),

		NewPostsPropertyChangedEvent(),
		NewPostsCollectionAddedToEvent(),

		NewActionValidation(),
		NewActionDefaults(),
		NewActionChoices(),
		NewActionParameterDefaults(),
		NewActionParameterChoices(),
		NewActionParameterAutoComplete(),

		NewPropertyValidate(),
		NewPropertyDefault(),
		NewPropertyChoices(),

		NewNamedStaticMethod(),
		NewDescribedAsStaticMethod(),
		NewHiddenStaticMethod(),
		NewDisabledStaticMethod(),
		NewHideForSession(),
		NewDisableForSession(),
		NewHideForContext(),
		NewDisableForContext(),

		NewNamedAnnotation(),
		NewDescribedAsAnnotation(),
		NewHiddenAnnotation(),
		NewDisabledAnnotation(),
		NewMemberOrderAnnotation(),
	}
}
