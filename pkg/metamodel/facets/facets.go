package facets

import (
	"fmt"

	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// Invoker is implemented by facets providing behaviour
// by invoking a domain method.
type Invoker interface {
	facetapi.Facet
	Invoke(target any, args ...any) ([]any, error)
}

////////////////////////////////////////////////////////////////////////////////

// ValueFacet carries a constant value.
type ValueFacet[T any] struct {
	facetapi.FacetBase
	value T
}

var _ facetapi.Facet = (*ValueFacet[string])(nil)

func NewValueFacet[T any](kind facetapi.Kind, provenance string, v T, opts ...facetapi.FacetOption) *ValueFacet[T] {
	return &ValueFacet[T]{
		FacetBase: facetapi.NewFacetBase(kind, provenance, opts...),
		value:     v,
	}
}

func (f *ValueFacet[T]) Get() T {
	return f.value
}

func (f *ValueFacet[T]) Value() any {
	return f.value
}

func NewNamed(provenance string, name string, opts ...facetapi.FacetOption) *ValueFacet[string] {
	return NewValueFacet(KindNamed, provenance, name, opts...)
}

func NewPlural(provenance string, name string, opts ...facetapi.FacetOption) *ValueFacet[string] {
	return NewValueFacet(KindPlural, provenance, name, opts...)
}

func NewDescribedAs(provenance string, desc string, opts ...facetapi.FacetOption) *ValueFacet[string] {
	return NewValueFacet(KindDescribedAs, provenance, desc, opts...)
}

func NewMemberOrder(provenance string, seq string, opts ...facetapi.FacetOption) *ValueFacet[string] {
	return NewValueFacet(KindMemberOrder, provenance, seq, opts...)
}

func NewHidden(provenance string, when applib.When, opts ...facetapi.FacetOption) *ValueFacet[applib.When] {
	return NewValueFacet(KindHidden, provenance, when, opts...)
}

func NewDisabled(provenance string, when applib.When, opts ...facetapi.FacetOption) *ValueFacet[applib.When] {
	return NewValueFacet(KindDisabled, provenance, when, opts...)
}

// Marker is a facet without payload.
type Marker struct {
	facetapi.FacetBase
}

var _ facetapi.Facet = (*Marker)(nil)

func NewMarker(kind facetapi.Kind, provenance string, opts ...facetapi.FacetOption) *Marker {
	return &Marker{facetapi.NewFacetBase(kind, provenance, opts...)}
}

func (f *Marker) Value() any {
	return true
}

////////////////////////////////////////////////////////////////////////////////

// MethodFacet provides its behaviour by invoking
// a method of the domain type.
type MethodFacet struct {
	facetapi.FacetBase
	method reflection.Method
}

var _ Invoker = (*MethodFacet)(nil)

func NewMethodFacet(kind facetapi.Kind, provenance string, m reflection.Method, opts ...facetapi.FacetOption) *MethodFacet {
	return &MethodFacet{
		FacetBase: facetapi.NewFacetBase(kind, provenance, opts...),
		method:    m,
	}
}

func (f *MethodFacet) Method() reflection.Method {
	return f.method
}

func (f *MethodFacet) Methods() []reflection.Method {
	return []reflection.Method{f.method}
}

func (f *MethodFacet) Value() any {
	return nil
}

func (f *MethodFacet) Invoke(target any, args ...any) ([]any, error) {
	r, err := f.method.Invoke(target, args...)
	if err != nil {
		return nil, facetapi.NewInvocationError(f.method.Key(), err)
	}
	return r, nil
}

// ActionInvocation describes how an action is invoked.
type ActionInvocation struct {
	MethodFacet
	returnType reflection.TypeRef
	onType     string
}

func NewActionInvocation(provenance string, m reflection.Method, onType reflection.Class) *ActionInvocation {
	return &ActionInvocation{
		MethodFacet: *NewMethodFacet(KindActionInvocation, provenance, m),
		returnType:  m.Result(),
		onType:      onType.Name(),
	}
}

func (f *ActionInvocation) ReturnType() reflection.TypeRef {
	return f.returnType
}

func (f *ActionInvocation) OnType() string {
	return f.onType
}

func (f *ActionInvocation) Value() any {
	return map[string]string{
		"returnType": f.returnType.String(),
		"onType":     f.onType,
	}
}

////////////////////////////////////////////////////////////////////////////////

// PostsEvent decorates a mutator facet and posts an event
// after the underlying mutator succeeded.
type PostsEvent struct {
	facetapi.FacetBase
	event string
}

var _ Invoker = (*PostsEvent)(nil)

func NewPostsEvent(kind facetapi.Kind, provenance string, event string) *PostsEvent {
	return &PostsEvent{
		FacetBase: facetapi.NewFacetBase(kind, provenance, facetapi.WithComposition(facetapi.Wrap)),
		event:     event,
	}
}

func (f *PostsEvent) Event() string {
	return f.event
}

func (f *PostsEvent) Value() any {
	return f.event
}

// Invoke delegates to the underlying facet.
func (f *PostsEvent) Invoke(target any, args ...any) ([]any, error) {
	u, ok := f.Underlying().(Invoker)
	if !ok {
		return nil, fmt.Errorf("%s facet posting %s has no underlying mutator", f.Kind(), f.event)
	}
	return u.Invoke(target, args...)
}
