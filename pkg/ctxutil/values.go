package ctxutil

import (
	"context"
)

// SimpleKey is a context key type avoiding collisions
// with keys of other packages.
type SimpleKey string

func (k SimpleKey) String() string {
	return string(k)
}

type ValueKey[T any] interface {
	Name() string
	WithValue(ctx context.Context, value T) context.Context
	Get(ctx context.Context) T
}

type valueKey[T any] struct {
	key SimpleKey
}

func NewValueKey[T any](name string) ValueKey[T] {
	return &valueKey[T]{
		key: SimpleKey(name),
	}
}

func (k *valueKey[T]) Name() string {
	return k.key.String()
}

func (k *valueKey[T]) WithValue(ctx context.Context, value T) context.Context {
	return context.WithValue(ctx, k.key, value)
}

// Get returns the value stored for the key or the zero value.
func (k *valueKey[T]) Get(ctx context.Context) T {
	var _nil T
	if ctx == nil {
		return _nil
	}
	if v, ok := ctx.Value(k.key).(T); ok {
		return v
	}
	return _nil
}
