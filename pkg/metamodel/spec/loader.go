package spec

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/facets/pkg/ctxutil"
	"github.com/mandelsoft/facets/pkg/locks"
	"github.com/mandelsoft/facets/pkg/metamodel/progmodel"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

// buildStack keeps the classes currently built along a
// supertype chain.
var buildStack = ctxutil.NewValueKey[[]string]("metamodel/buildstack")

type entry struct {
	spec Specification
	err  error
}

// Loader is the cache of built specifications. Specifications are
// built lazily on first request and kept until the loader is shut
// down. Concurrent requests for the same class are serialized, failed
// builds are cached and never retried.
type Loader struct {
	lock         sync.RWMutex
	assembler    *Assembler
	introspector *reflection.Introspector
	locks        *locks.ElementLocks[string]
	entries      map[string]*entry
	shutdown     bool
}

type Option func(l *Loader)

// WithIntrospector sets the introspector used for Go types.
func WithIntrospector(i *reflection.Introspector) Option {
	return func(l *Loader) {
		l.introspector = i
	}
}

func NewLoader(pm *progmodel.ProgrammingModel, opts ...Option) *Loader {
	l := &Loader{
		assembler:    NewAssembler(pm),
		introspector: reflection.NewIntrospector(),
		locks:        locks.NewElementLocks[string](),
		entries:      map[string]*entry{},
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loader) Model() *progmodel.ProgrammingModel {
	return l.assembler.Model()
}

func (l *Loader) get(id string) (*entry, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	if l.shutdown {
		return nil, ErrShutdown
	}
	return l.entries[id], nil
}

func (l *Loader) set(id string, e *entry) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.shutdown {
		return ErrShutdown
	}
	l.entries[id] = e
	return nil
}

// LoadType provides the specification for a Go type.
func (l *Loader) LoadType(ctx context.Context, t reflect.Type) (Specification, error) {
	c, err := l.introspector.ForType(t)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, c)
}

// Load provides the specification for a class. Supertype
// specifications are loaded first.
func (l *Loader) Load(ctx context.Context, c reflection.Class) (Specification, error) {
	if utils.IsNil(c) {
		return nil, fmt.Errorf("no class given")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	id := c.Name()

	stack := buildStack.Get(ctx)
	if cycle := utils.Cycle(id, stack...); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCyclicHierarchy, strings.Join(cycle, "->"))
	}

	e, err := l.get(id)
	if err != nil || e != nil {
		return result(e, err)
	}

	if err := l.locks.Lock(ctx, id); err != nil {
		return nil, err
	}
	defer l.locks.Unlock(id)

	e, err = l.get(id)
	if err != nil || e != nil {
		return result(e, err)
	}

	e = &entry{}
	e.spec, e.err = l.build(buildStack.WithValue(ctx, append(slices.Clone(stack), id)), c)
	if e.err != nil && ctx.Err() != nil {
		// cancelled builds are not cached
		return nil, e.err
	}
	if err := l.set(id, e); err != nil {
		return nil, err
	}
	return result(e, nil)
}

func (l *Loader) build(ctx context.Context, c reflection.Class) (Specification, error) {
	var super Specification
	if c.Super() != nil {
		s, err := l.Load(ctx, c.Super())
		if err != nil {
			return nil, fmt.Errorf("class %s: supertype %s: %w", c.Name(), c.Super().Name(), err)
		}
		super = s
	}
	return l.assembler.Assemble(c, super)
}

func result(e *entry, err error) (Specification, error) {
	if err != nil {
		return nil, err
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.spec, nil
}

// Lookup returns a built specification or nil.
func (l *Loader) Lookup(id string) Specification {
	e, _ := l.get(id)
	if e == nil {
		return nil
	}
	return e.spec
}

// State provides the build state for a class id.
func (l *Loader) State(id string) State {
	e, err := l.get(id)
	switch {
	case err != nil:
		return Unbuilt
	case e == nil:
		if l.locks.IsLocked(id) {
			return Building
		}
		return Unbuilt
	case e.err != nil:
		return Failed
	default:
		return Built
	}
}

// Specifications lists the built specifications ordered by id.
func (l *Loader) Specifications() []Specification {
	l.lock.RLock()
	defer l.lock.RUnlock()

	var r []Specification
	for _, id := range utils.OrderedMapKeys(l.entries) {
		if e := l.entries[id]; e.spec != nil {
			r = append(r, e.spec)
		}
	}
	return r
}

// Failures lists the errors of failed builds by class id.
func (l *Loader) Failures() map[string]error {
	l.lock.RLock()
	defer l.lock.RUnlock()

	r := map[string]error{}
	for id, e := range l.entries {
		if e.err != nil {
			r[id] = e.err
		}
	}
	return r
}

// Shutdown drops all specifications. Further requests fail.
func (l *Loader) Shutdown() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.shutdown = true
	l.entries = nil
	log.Debug("specification loader shut down")
}
