package utils

import (
	"cmp"
	"reflect"
	"slices"
)

func TypeOf[T any]() reflect.Type {
	var t T
	return reflect.TypeOf(&t).Elem()
}

func MapKeys[K comparable, V any](m map[K]V, cmp ...func(a, b K) int) []K {
	r := []K{}

	for k := range m {
		r = append(r, k)
	}
	if len(cmp) > 0 {
		slices.SortFunc(r, cmp[0])
	}
	return r
}

func OrderedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	r := MapKeys(m)
	slices.Sort(r)
	return r
}

func OrderedMapElements[K cmp.Ordered, V any](m map[K]V) []V {
	return TransformSlice(OrderedMapKeys(m), func(k K) V {
		return m[k]
	})
}

type Stringable interface {
	String() string
}

func Join[S Stringable](list []S, seps ...string) string {
	return JoinFunc(list, OptionalDefaulted(", ", seps...), func(s S) string { return s.String() })
}

func JoinFunc[S any](list []S, separator string, f func(S) string) string {
	sep := ""
	r := ""
	for _, e := range list {
		r += sep + f(e)
		sep = separator
	}
	return r
}

func TransformSlice[E any, A ~[]E, T any](in A, m func(E) T) []T {
	r := make([]T, len(in))
	for i, v := range in {
		r[i] = m(v)
	}
	return r
}

func TransformSliceWithError[E any, A ~[]E, T any](in A, m func(E) (T, error)) ([]T, error) {
	var err error
	r := make([]T, len(in))
	for i, v := range in {
		r[i], err = m(v)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// FilterSlice returns the elements of a slice matching the given predicate.
// The result is a new slice, the input is never modified.
func FilterSlice[E any, A ~[]E](in A, f func(E) bool) A {
	var r A
	for _, e := range in {
		if f(e) {
			r = append(r, e)
		}
	}
	return r
}

type PointerType[P any] interface {
	*P
}

// CastPointer converts a typed pointer into an interface
// avoiding typed nil interfaces.
func CastPointer[T any, E any, P PointerType[E]](e P) T {
	var _nil T
	if e == nil {
		return _nil
	}
	var i any = e
	return i.(T)
}
