package facetapi

import (
	"errors"
	"fmt"
)

// ErrMetaModel is the root of all errors caused by
// inconsistent domain type declarations.
var ErrMetaModel = errors.New("metamodel error")

// ErrFrozen is returned for modifications of a frozen holder.
var ErrFrozen = errors.New("facet holder is frozen")

func MetaModelErrorf(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMetaModel, fmt.Sprintf(msg, args...))
}

// ConflictError is returned if two facets of the same kind are
// installed on a holder without declared composition.
type ConflictError struct {
	Holder    string
	Kind      Kind
	Installed string
	Rejected  string
}

func NewConflictError(holder string, installed, rejected Facet) error {
	return &ConflictError{
		Holder:    holder,
		Kind:      installed.Kind(),
		Installed: installed.Provenance(),
		Rejected:  rejected.Provenance(),
	}
}

func (e *ConflictError) Error() string {
	if e.Installed == e.Rejected {
		return fmt.Sprintf("%s: conflicting %s facets for %s (both installed by %s)", ErrMetaModel, e.Kind, e.Holder, e.Installed)
	}
	return fmt.Sprintf("%s: conflicting %s facets for %s (installed by %s, rejected from %s)", ErrMetaModel, e.Kind, e.Holder, e.Installed, e.Rejected)
}

func (e *ConflictError) Unwrap() error {
	return ErrMetaModel
}

// InvocationError is returned if a method required to
// build a facet cannot be invoked.
type InvocationError struct {
	Method string
	Err    error
}

func NewInvocationError(method string, err error) error {
	return &InvocationError{Method: method, Err: err}
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("cannot invoke %s: %s", e.Method, e.Err)
}

func (e *InvocationError) Unwrap() []error {
	return []error{ErrMetaModel, e.Err}
}
