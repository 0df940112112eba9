package interaction

import (
	"fmt"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/spec"
)

// Set sets a property to a new value after validating it.
func (i *Interaction) Set(m *spec.Member, target any, value any) error {
	if m.FeatureType() != facetapi.FeatureProperty {
		return fmt.Errorf("%s is no property", m.Identifier())
	}
	if err := i.checkValid(m, target, value); err != nil {
		return err
	}
	return i.mutate(m, facets.KindPropertySetter, target, value)
}

// Clear clears a property.
func (i *Interaction) Clear(m *spec.Member, target any) error {
	return i.mutate(m, facets.KindPropertyClear, target)
}

// AddTo adds an element to a collection.
func (i *Interaction) AddTo(m *spec.Member, target any, elem any) error {
	return i.mutate(m, facets.KindCollectionAddTo, target, elem)
}

// RemoveFrom removes an element from a collection.
func (i *Interaction) RemoveFrom(m *spec.Member, target any, elem any) error {
	return i.mutate(m, facets.KindCollectionRemoveFrom, target, elem)
}

// Get reads the value of a property or collection.
func (i *Interaction) Get(m *spec.Member, target any) (any, error) {
	kind := facets.KindPropertyAccessor
	if m.FeatureType() == facetapi.FeatureCollection {
		kind = facets.KindCollectionAccessor
	}
	r, found, err := invoke(m, kind, target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s cannot be read", m.Identifier())
	}
	return first(r), nil
}

// Invoke validates the arguments and invokes an action.
func (i *Interaction) Invoke(m *spec.Member, target any, args ...any) (any, error) {
	if m.FeatureType() != facetapi.FeatureAction {
		return nil, fmt.Errorf("%s is no action", m.Identifier())
	}
	if err := i.checkValid(m, target, args...); err != nil {
		return nil, err
	}
	r, found, err := invoke(m, facets.KindActionInvocation, target, args...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s cannot be invoked", m.Identifier())
	}
	log.Debug("invoked {{action}}", "action", m.Identifier(), "user", userName(i))
	return first(r), nil
}

func (i *Interaction) checkValid(m *spec.Member, target any, args ...any) error {
	reason, err := i.Validate(m, target, args...)
	if err != nil {
		return err
	}
	if reason != "" {
		return &ValidationError{Member: m.Identifier(), Reason: reason}
	}
	return nil
}

func (i *Interaction) mutate(m *spec.Member, kind facetapi.Kind, target any, args ...any) error {
	f := m.GetFacet(kind)
	inv, ok := f.(facets.Invoker)
	if !ok {
		return fmt.Errorf("%s does not support %s", m.Identifier(), kind)
	}
	if _, err := inv.Invoke(target, args...); err != nil {
		return err
	}
	for _, d := range facetapi.Chain(f) {
		if p, ok := d.(*facets.PostsEvent); ok && i.sink != nil {
			log.Trace("posting {{event}} for {{member}}", "event", p.Event(), "member", m.Identifier())
			i.sink.Post(Event{Name: p.Event(), Member: m.Identifier(), Target: target, Args: args})
		}
	}
	return nil
}

func userName(i *Interaction) string {
	if i.user == nil {
		return ""
	}
	return i.user.Name
}

// ValidationError reports input rejected by a validation method.
type ValidationError struct {
	Member string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Member, e.Reason)
}
