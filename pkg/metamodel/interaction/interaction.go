package interaction

import (
	"fmt"
	"reflect"

	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/spec"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Interaction evaluates the facets of built specifications on
// behalf of a session user. It only reads specifications, all
// decisions are taken by the bound domain methods.
type Interaction struct {
	user *applib.User
	sink EventSink
}

type Option func(i *Interaction)

// WithEventSink sets the sink for events posted by decorated mutators.
func WithEventSink(s EventSink) Option {
	return func(i *Interaction) {
		i.sink = s
	}
}

func New(user *applib.User, opts ...Option) *Interaction {
	i := &Interaction{user: user}
	for _, o := range opts {
		o(i)
	}
	return i
}

func (i *Interaction) User() *applib.User {
	return i.user
}

// IsVisible checks the static, session and context hide facets.
func (i *Interaction) IsVisible(m *spec.Member, target any) (bool, error) {
	if f := facetapi.GetFacet[*facets.ValueFacet[applib.When]](m, facets.KindHidden); f != nil && Applies(f.Get(), target) {
		log.Trace("{{member}} hidden ({{when}})", "member", m.Identifier(), "when", f.Get())
		return false, nil
	}
	hidden, err := flag(m, facets.KindHiddenForSession, target, i.user)
	if err != nil || hidden {
		return false, err
	}
	hidden, err = flag(m, facets.KindHiddenForContext, target)
	if err != nil {
		return false, err
	}
	return !hidden, nil
}

// IsUsable checks the static, session and context disable facets.
// It returns the reason for a disabled member or the empty string.
// The arguments are passed to context disable methods taking the
// parameters of an action.
func (i *Interaction) IsUsable(m *spec.Member, target any, args ...any) (string, error) {
	if f := facetapi.GetFacet[*facets.ValueFacet[applib.When]](m, facets.KindDisabled); f != nil && Applies(f.Get(), target) {
		return fmt.Sprintf("%s is disabled (%s)", m.Identifier(), f.Get()), nil
	}
	reason, err := text(m, facets.KindDisabledForSession, target, i.user)
	if err != nil || reason != "" {
		return reason, err
	}
	f, ok := m.GetFacet(facets.KindDisabledForContext).(*facets.MethodFacet)
	if !ok {
		return "", nil
	}
	if len(f.Method().Params()) == 0 {
		args = nil
	}
	return text(m, facets.KindDisabledForContext, target, args...)
}

// Validate validates the arguments of an action or the new value of
// a property. It returns the reason for invalid input or the empty
// string.
func (i *Interaction) Validate(m *spec.Member, target any, args ...any) (string, error) {
	switch m.FeatureType() {
	case facetapi.FeatureAction:
		if len(args) != len(m.Parameters()) {
			return "", fmt.Errorf("action %s requires %d argument(s), but %d given", m.Identifier(), len(m.Parameters()), len(args))
		}
		return text(m, facets.KindActionValidation, target, args...)
	case facetapi.FeatureProperty:
		if len(args) != 1 {
			return "", fmt.Errorf("property %s requires a single value", m.Identifier())
		}
		return text(m, facets.KindPropertyValidate, target, args...)
	default:
		return "", nil
	}
}

// Defaults provides the default values for the parameters of an
// action or the value of a property. Missing defaults are nil.
func (i *Interaction) Defaults(m *spec.Member, target any) ([]any, error) {
	switch m.FeatureType() {
	case facetapi.FeatureAction:
		r, found, err := invoke(m, facets.KindActionDefaults, target)
		if err != nil {
			return nil, err
		}
		if found {
			return perParameter(m, first(r))
		}
		defaults := make([]any, len(m.Parameters()))
		for n, p := range m.Parameters() {
			r, _, err := invoke(p, facets.KindParameterDefault, target)
			if err != nil {
				return nil, err
			}
			defaults[n] = first(r)
		}
		return defaults, nil
	case facetapi.FeatureProperty:
		r, found, err := invoke(m, facets.KindPropertyDefault, target)
		if err != nil || !found {
			return nil, err
		}
		return []any{first(r)}, nil
	default:
		return nil, nil
	}
}

// Choices provides the choices for the parameters of an action or
// for a property (one list).
func (i *Interaction) Choices(m *spec.Member, target any) ([][]any, error) {
	switch m.FeatureType() {
	case facetapi.FeatureAction:
		r, found, err := invoke(m, facets.KindActionChoices, target)
		if err != nil {
			return nil, err
		}
		if found {
			list, err := perParameter(m, first(r))
			if err != nil {
				return nil, err
			}
			return utils.TransformSliceWithError(list, Elements)
		}
		choices := make([][]any, len(m.Parameters()))
		for n, p := range m.Parameters() {
			r, _, err := invoke(p, facets.KindParameterChoices, target)
			if err != nil {
				return nil, err
			}
			if choices[n], err = Elements(first(r)); err != nil {
				return nil, fmt.Errorf("choices for parameter %d of %s: %w", n, m.Identifier(), err)
			}
		}
		return choices, nil
	case facetapi.FeatureProperty:
		r, found, err := invoke(m, facets.KindPropertyChoices, target)
		if err != nil || !found {
			return nil, err
		}
		list, err := Elements(first(r))
		if err != nil {
			return nil, err
		}
		return [][]any{list}, nil
	default:
		return nil, nil
	}
}

// AutoComplete provides the values matching a search string for
// an action parameter.
func (i *Interaction) AutoComplete(m *spec.Member, target any, param int, search string) ([]any, error) {
	p := m.Parameter(param)
	if p == nil {
		return nil, fmt.Errorf("action %s has no parameter %d", m.Identifier(), param)
	}
	r, _, err := invoke(p, facets.KindParameterAutoComplete, target, search)
	if err != nil {
		return nil, err
	}
	return Elements(first(r))
}

////////////////////////////////////////////////////////////////////////////////

// Applies checks whether a when value applies to a target.
func Applies(w applib.When, target any) bool {
	switch w {
	case applib.Always:
		return true
	case applib.OncePersisted, applib.UntilPersisted:
		p, ok := target.(applib.Persistable)
		if !ok {
			return false
		}
		return p.IsPersisted() == (w == applib.OncePersisted)
	default:
		return false
	}
}

// Elements provides the elements of a collection value.
func Elements(v any) ([]any, error) {
	if utils.IsNil(v) {
		return nil, nil
	}
	if l, ok := v.([]any); ok {
		return l, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		r := make([]any, rv.Len())
		for n := range r {
			r[n] = rv.Index(n).Interface()
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%T is no collection", v)
	}
}

func perParameter(m *spec.Member, v any) ([]any, error) {
	list, err := Elements(v)
	if err != nil {
		return nil, err
	}
	if len(list) != len(m.Parameters()) {
		return nil, fmt.Errorf("%s provides %d value(s) for %d parameter(s)", m.Identifier(), len(list), len(m.Parameters()))
	}
	return list, nil
}

func invoke(h facetapi.FacetHolder, kind facetapi.Kind, target any, args ...any) ([]any, bool, error) {
	f, ok := h.GetFacet(kind).(facets.Invoker)
	if !ok {
		return nil, false, nil
	}
	r, err := f.Invoke(target, args...)
	return r, true, err
}

func first(r []any) any {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

func flag(h facetapi.FacetHolder, kind facetapi.Kind, target any, args ...any) (bool, error) {
	r, _, err := invoke(h, kind, target, args...)
	if err != nil {
		return false, err
	}
	b, _ := first(r).(bool)
	return b, nil
}

func text(h facetapi.FacetHolder, kind facetapi.Kind, target any, args ...any) (string, error) {
	r, _, err := invoke(h, kind, target, args...)
	if err != nil {
		return "", err
	}
	s, _ := first(r).(string)
	return s, nil
}
