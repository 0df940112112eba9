package reflection

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/utils"
)

// InvokeFunc implements the behaviour of a declared method.
type InvokeFunc func(target any, args ...any) ([]any, error)

// MethodSpec describes a method of a declared class.
// Without a Func the method returns the configured Value
// (or nothing for void methods).
type MethodSpec struct {
	Name        string             `json:"name"`
	Params      []string           `json:"params,omitempty"`
	Result      string             `json:"result,omitempty"`
	Static      bool               `json:"static,omitempty"`
	Annotations applib.Annotations `json:"annotations,omitempty"`
	Value       interface{}        `json:"value,omitempty"`
	Func        InvokeFunc         `json:"-"`
}

func NewMethodSpec(name, result string, params ...string) MethodSpec {
	return MethodSpec{
		Name:   name,
		Result: result,
		Params: params,
	}
}

func (s MethodSpec) AsStatic() MethodSpec {
	s.Static = true
	return s
}

func (s MethodSpec) WithValue(v interface{}) MethodSpec {
	s.Value = v
	return s
}

func (s MethodSpec) WithFunc(f InvokeFunc) MethodSpec {
	s.Func = f
	return s
}

func (s MethodSpec) WithAnnotation(name, value string) MethodSpec {
	a := applib.Annotations{}
	for k, v := range s.Annotations {
		a[k] = v
	}
	a[name] = value
	s.Annotations = a
	return s
}

// ClassSpec describes a declared class.
type ClassSpec struct {
	Name        string             `json:"name"`
	Super       string             `json:"super,omitempty"`
	Annotations applib.Annotations `json:"annotations,omitempty"`
	Methods     []MethodSpec       `json:"methods,omitempty"`
}

// NewClass creates a class from a declarative description.
// If the description names a supertype, the given super class
// must match it.
func NewClass(spec ClassSpec, super Class) (Class, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("class name missing")
	}
	if utils.IsNil(super) {
		super = nil
		if spec.Super != "" {
			return nil, fmt.Errorf("class %q: supertype %q not resolved", spec.Name, spec.Super)
		}
	} else {
		if spec.Super != "" && spec.Super != super.Name() {
			return nil, fmt.Errorf("class %q: supertype mismatch (%q != %q)", spec.Name, spec.Super, super.Name())
		}
		if IsSubclassOf(super, &declaredClass{name: spec.Name}) {
			return nil, fmt.Errorf("class %q: cyclic hierarchy", spec.Name)
		}
	}

	c := &declaredClass{
		name:        spec.Name,
		super:       super,
		annotations: spec.Annotations,
		byName:      map[string]Method{},
	}

	for i, ms := range spec.Methods {
		if ms.Name == "" {
			return nil, fmt.Errorf("class %q: method %d has no name", spec.Name, i)
		}
		if c.byName[ms.Name] != nil {
			return nil, fmt.Errorf("class %q: duplicate method %q", spec.Name, ms.Name)
		}
		m := &declaredMethod{
			class:  c,
			spec:   ms,
			params: utils.TransformSlice(ms.Params, ParseTypeRef),
			result: ParseTypeRef(ms.Result),
		}
		c.declared = append(c.declared, m)
		c.byName[ms.Name] = m
	}
	slices.SortFunc(c.declared, compareMethods)

	c.methods = slices.Clone(c.declared)
	if super != nil {
		for _, m := range super.Methods() {
			if c.byName[m.Name()] == nil {
				c.byName[m.Name()] = m
				c.methods = append(c.methods, m)
			}
		}
		slices.SortFunc(c.methods, compareMethods)
	}
	return c, nil
}

func compareMethods(a, b Method) int {
	if a.Name() < b.Name() {
		return -1
	}
	if a.Name() > b.Name() {
		return 1
	}
	return 0
}

type declaredClass struct {
	name        string
	super       Class
	annotations applib.Annotations

	declared []Method
	methods  []Method
	byName   map[string]Method
}

var _ Class = (*declaredClass)(nil)

func (c *declaredClass) Name() string {
	return c.name
}

func (c *declaredClass) ShortName() string {
	return c.name
}

func (c *declaredClass) Super() Class {
	return c.super
}

func (c *declaredClass) DeclaredMethods() []Method {
	return slices.Clone(c.declared)
}

func (c *declaredClass) Methods() []Method {
	return slices.Clone(c.methods)
}

func (c *declaredClass) Method(name string) Method {
	return c.byName[name]
}

func (c *declaredClass) Annotations() applib.Annotations {
	return c.annotations
}

func (c *declaredClass) GoType() reflect.Type {
	return nil
}

func (c *declaredClass) String() string {
	return c.name
}

type declaredMethod struct {
	class  *declaredClass
	spec   MethodSpec
	params []TypeRef
	result TypeRef
}

var _ Method = (*declaredMethod)(nil)

func (m *declaredMethod) Name() string {
	return m.spec.Name
}

func (m *declaredMethod) DeclaringClass() Class {
	return m.class
}

func (m *declaredMethod) Params() []TypeRef {
	return slices.Clone(m.params)
}

func (m *declaredMethod) Result() TypeRef {
	return m.result
}

func (m *declaredMethod) Static() bool {
	return m.spec.Static
}

func (m *declaredMethod) Annotations() applib.Annotations {
	return m.spec.Annotations
}

func (m *declaredMethod) Key() string {
	return methodKey(m.class, m.spec.Name)
}

func (m *declaredMethod) String() string {
	return m.Key()
}

func (m *declaredMethod) Invoke(target any, args ...any) ([]any, error) {
	if utils.IsNil(target) && !m.spec.Static {
		return nil, fmt.Errorf("method %s requires a target object", m.Key())
	}
	if len(args) != len(m.params) {
		return nil, fmt.Errorf("method %s requires %d argument(s), but %d given", m.Key(), len(m.params), len(args))
	}
	if m.spec.Func != nil {
		return m.spec.Func(target, args...)
	}
	if m.result.IsVoid() {
		return nil, nil
	}
	return []any{m.spec.Value}, nil
}
