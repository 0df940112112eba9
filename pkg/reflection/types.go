package reflection

import (
	"reflect"

	"github.com/mandelsoft/facets/pkg/applib"
)

// Class describes a domain type as seen by the metamodel.
type Class interface {
	// Name is the unique name of the class.
	Name() string
	ShortName() string
	// Super returns the supertype or nil.
	Super() Class

	// DeclaredMethods returns the methods declared by this class
	// ordered by name.
	DeclaredMethods() []Method
	// Methods returns the most-derived view of all methods
	// including inherited ones ordered by name. An override
	// hides the method of the supertype.
	Methods() []Method
	// Method returns the most-derived method with the given name or nil.
	Method(name string) Method

	Annotations() applib.Annotations

	// GoType returns the Go type for classes introspected from
	// Go types, nil otherwise.
	GoType() reflect.Type
}

// Method describes a method of a class.
type Method interface {
	Name() string
	DeclaringClass() Class

	Params() []TypeRef
	// Result returns the first result type or Void.
	Result() TypeRef
	// Static methods can be invoked without a domain instance.
	Static() bool
	Annotations() applib.Annotations

	// Invoke calls the method on the given target. A nil target is
	// only valid for static methods.
	Invoke(target any, args ...any) ([]any, error)

	// Key uniquely identifies the method (declaring class and name).
	Key() string
}

func MethodKey(m Method) string {
	if m == nil {
		return ""
	}
	return m.Key()
}

func methodKey(c Class, name string) string {
	return c.Name() + "#" + name
}

// IsSubclassOf checks whether c is s or inherits from s.
func IsSubclassOf(c, s Class) bool {
	for c != nil {
		if c.Name() == s.Name() {
			return true
		}
		c = c.Super()
	}
	return false
}

// Hierarchy returns the class followed by its supertypes,
// closest first.
func Hierarchy(c Class) []Class {
	var r []Class
	for c != nil {
		r = append(r, c)
		c = c.Super()
	}
	return r
}

// SameParams checks whether the parameter lists are identical.
func SameParams(a, b []TypeRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
