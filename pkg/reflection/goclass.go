package reflection

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Introspector maps Go struct types to classes.
// The supertype of a struct type is its first embedded struct
// field. A method is static if it is declared with a value
// receiver.
//
// Class descriptors are cached, so that the same type
// always yields the same descriptor.
type Introspector struct {
	lock    sync.Mutex
	classes map[reflect.Type]*goClass
}

func NewIntrospector() *Introspector {
	return &Introspector{classes: map[reflect.Type]*goClass{}}
}

var defaultIntrospector = NewIntrospector()

// ForType returns the class for a Go struct type (or pointer to struct)
// using a shared introspector.
func ForType(t reflect.Type) (Class, error) {
	return defaultIntrospector.ForType(t)
}

// Of returns the class for the Go type T.
func Of[T any]() (Class, error) {
	return defaultIntrospector.ForType(utils.TypeOf[T]())
}

func (i *Introspector) ForType(t reflect.Type) (Class, error) {
	i.lock.Lock()
	defer i.lock.Unlock()

	c, err := i.forType(t, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (i *Introspector) forType(t reflect.Type, stack []reflect.Type) (*goClass, error) {
	if t == nil {
		return nil, fmt.Errorf("no type given")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is no struct type", t)
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("anonymous struct types not supported")
	}
	if c := i.classes[t]; c != nil {
		return c, nil
	}
	if slices.Contains(stack, t) {
		return nil, fmt.Errorf("cyclic embedding for type %s: %s", t, utils.JoinFunc(append(stack, t), "->", reflect.Type.String))
	}

	c := &goClass{
		typ:      t,
		byName:   map[string]Method{},
		memberAn: map[string]applib.Annotations{},
	}

	if t.NumField() > 0 {
		f := t.Field(0)
		if f.Anonymous {
			st := f.Type
			if st.Kind() == reflect.Pointer {
				st = st.Elem()
			}
			if st.Kind() == reflect.Struct && st.Name() != "" {
				s, err := i.forType(st, append(stack, t))
				if err != nil {
					return nil, fmt.Errorf("supertype of %s: %w", t, err)
				}
				c.super = s
			}
		}
	}

	if err := c.setup(); err != nil {
		return nil, err
	}
	i.classes[t] = c
	log.Trace("introspected class {{class}}", "class", c.Name(), "methods", len(c.methods))
	return c, nil
}

////////////////////////////////////////////////////////////////////////////////

type goClass struct {
	typ      reflect.Type
	super    *goClass
	memberAn map[string]applib.Annotations

	declared []Method
	methods  []Method
	byName   map[string]Method
}

var _ Class = (*goClass)(nil)

func (c *goClass) setup() error {
	pt := reflect.PointerTo(c.typ)

	if c.declares(annotatedMethod) {
		an, err := c.memberAnnotations()
		if err != nil {
			return err
		}
		c.memberAn = an
	}

	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		var meth Method
		if c.super != nil && c.super.byName[m.Name] != nil && !c.declares(m.Name) {
			meth = c.super.byName[m.Name]
		} else {
			_, static := c.typ.MethodByName(m.Name)
			gm := &goMethod{
				class:  c,
				name:   m.Name,
				static: static,
				result: Void,
			}
			ft := m.Type
			for p := 1; p < ft.NumIn(); p++ {
				gm.params = append(gm.params, TypeRefFor(ft.In(p)))
			}
			for r := 0; r < ft.NumOut(); r++ {
				if ft.Out(r) == errorType {
					gm.withError = r == ft.NumOut()-1
					continue
				}
				if r == 0 {
					gm.result = TypeRefFor(ft.Out(r))
				}
			}
			meth = gm
			c.declared = append(c.declared, gm)
		}
		c.byName[m.Name] = meth
		c.methods = append(c.methods, meth)
	}
	return nil
}

var (
	errorType       = utils.TypeOf[error]()
	annotatedMethod = "MemberAnnotations"
)

// declares checks whether a method is declared by the type itself.
// Promoted methods are provided by compiler generated wrappers.
func (c *goClass) declares(name string) bool {
	pm, ok := reflect.PointerTo(c.typ).MethodByName(name)
	if !ok {
		return false
	}
	if c.super == nil {
		return true
	}
	if !isWrapper(pm.Func) {
		return true
	}
	vm, ok := c.typ.MethodByName(name)
	return ok && !isWrapper(vm.Func)
}

func isWrapper(f reflect.Value) bool {
	fn := runtime.FuncForPC(f.Pointer())
	if fn == nil {
		return false
	}
	file, _ := fn.FileLine(fn.Entry())
	return strings.HasPrefix(file, "<autogenerated>")
}

func (c *goClass) memberAnnotations() (result map[string]applib.Annotations, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("member annotations of %s: %v", c.Name(), r)
		}
	}()
	a, ok := reflect.New(c.typ).Interface().(applib.Annotated)
	if !ok {
		return nil, nil
	}
	result = map[string]applib.Annotations{}
	for k, v := range a.MemberAnnotations() {
		result[k] = v
	}
	return result, nil
}

func (c *goClass) Name() string {
	return c.typ.PkgPath() + "." + c.typ.Name()
}

func (c *goClass) ShortName() string {
	return c.typ.Name()
}

func (c *goClass) Super() Class {
	return utils.CastPointer[Class](c.super)
}

func (c *goClass) DeclaredMethods() []Method {
	return slices.Clone(c.declared)
}

func (c *goClass) Methods() []Method {
	return slices.Clone(c.methods)
}

func (c *goClass) Method(name string) Method {
	return c.byName[name]
}

func (c *goClass) Annotations() applib.Annotations {
	return c.memberAn[""]
}

func (c *goClass) GoType() reflect.Type {
	return c.typ
}

func (c *goClass) String() string {
	return c.Name()
}

////////////////////////////////////////////////////////////////////////////////

type goMethod struct {
	class     *goClass
	name      string
	static    bool
	params    []TypeRef
	result    TypeRef
	withError bool
}

var _ Method = (*goMethod)(nil)

func (m *goMethod) Name() string {
	return m.name
}

func (m *goMethod) DeclaringClass() Class {
	return m.class
}

func (m *goMethod) Params() []TypeRef {
	return slices.Clone(m.params)
}

func (m *goMethod) Result() TypeRef {
	return m.result
}

func (m *goMethod) Static() bool {
	return m.static
}

func (m *goMethod) Annotations() applib.Annotations {
	return m.class.memberAn[m.name]
}

func (m *goMethod) Key() string {
	return methodKey(m.class, m.name)
}

func (m *goMethod) String() string {
	return m.Key()
}

func (m *goMethod) Invoke(target any, args ...any) (result []any, err error) {
	var recv reflect.Value
	if utils.IsNil(target) {
		if !m.static {
			return nil, fmt.Errorf("method %s requires a target object", m.Key())
		}
		recv = reflect.New(m.class.typ)
	} else {
		recv = reflect.ValueOf(target)
		if recv.Kind() != reflect.Pointer {
			p := reflect.New(recv.Type())
			p.Elem().Set(recv)
			recv = p
		}
	}
	f := recv.MethodByName(m.name)
	if !f.IsValid() {
		return nil, fmt.Errorf("target type %s has no method %s", recv.Type(), m.name)
	}
	ft := f.Type()
	if ft.NumIn() != len(args) {
		return nil, fmt.Errorf("method %s requires %d argument(s), but %d given", m.Key(), ft.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := ft.In(i)
		if utils.IsNil(a) {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(pt) {
			if !v.CanConvert(pt) {
				return nil, fmt.Errorf("argument %d of method %s: %s not assignable to %s", i, m.Key(), v.Type(), pt)
			}
			v = v.Convert(pt)
		}
		in[i] = v
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("method %s panicked: %v", m.Key(), r)
		}
	}()
	out := f.Call(in)
	if m.withError {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	return utils.TransformSlice(out, reflect.Value.Interface), nil
}
