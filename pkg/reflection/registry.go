package reflection

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mandelsoft/facets/pkg/utils"
)

// ClassSource provides classes by name.
type ClassSource interface {
	ClassNames() []string
	GetClass(name string) Class
}

// Registry is a set of classes with a registration possibility.
// Declared classes may refer to supertypes already registered.
type Registry struct {
	lock    sync.Mutex
	classes map[string]Class
}

var _ ClassSource = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{classes: map[string]Class{}}
}

func (r *Registry) Register(c Class) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.register(c)
}

func (r *Registry) register(c Class) error {
	if utils.IsNil(c) {
		return fmt.Errorf("no class given")
	}
	if old := r.classes[c.Name()]; old != nil {
		if old == c {
			return nil
		}
		return fmt.Errorf("class %q already registered", c.Name())
	}
	r.classes[c.Name()] = c
	return nil
}

func (r *Registry) GetClass(name string) Class {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.classes[name]
}

func (r *Registry) ClassNames() []string {
	var names []string

	r.lock.Lock()
	defer r.lock.Unlock()

	for n := range r.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Define creates and registers declared classes. Supertypes are
// resolved from the given set or the registry. The classes are
// returned in the order of the given specs.
func (r *Registry) Define(specs ...ClassSpec) ([]Class, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	pending := map[string]ClassSpec{}
	for _, s := range specs {
		if _, ok := pending[s.Name]; ok {
			return nil, fmt.Errorf("duplicate class definition %q", s.Name)
		}
		if r.classes[s.Name] != nil {
			return nil, fmt.Errorf("class %q already registered", s.Name)
		}
		pending[s.Name] = s
	}

	created := map[string]Class{}
	var define func(name string, stack []string) (Class, error)
	define = func(name string, stack []string) (Class, error) {
		if c := created[name]; c != nil {
			return c, nil
		}
		if c := r.classes[name]; c != nil {
			return c, nil
		}
		s, ok := pending[name]
		if !ok {
			return nil, fmt.Errorf("unknown class %q", name)
		}
		if cycle := utils.Cycle(name, stack...); cycle != nil {
			return nil, fmt.Errorf("cyclic class hierarchy: %s", strings.Join(cycle, "->"))
		}
		var super Class
		if s.Super != "" {
			c, err := define(s.Super, append(stack, name))
			if err != nil {
				return nil, fmt.Errorf("supertype of %q: %w", name, err)
			}
			super = c
		}
		c, err := NewClass(s, super)
		if err != nil {
			return nil, err
		}
		created[name] = c
		return c, nil
	}

	var result []Class
	for _, s := range specs {
		c, err := define(s.Name, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	for _, c := range result {
		r.register(c)
	}
	log.Debug("defined {{count}} class(es)", "count", len(result))
	return result, nil
}
