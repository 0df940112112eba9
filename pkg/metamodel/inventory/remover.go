package inventory

import (
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/facets/pkg/reflection"
)

// MethodRemover tracks the methods consumed while building
// a specification. It addresses methods by name, because it
// is scoped to the most-derived method view of a single class.
type MethodRemover interface {
	RemoveMethod(m reflection.Method)
	RemoveMethodNamed(name string)
	IsRemoved(m reflection.Method) bool
	// Removed lists the names of consumed methods in order.
	Removed() []string
}

type remover struct {
	lock    sync.Mutex
	removed sets.Set[string]
}

var _ MethodRemover = (*remover)(nil)

func NewMethodRemover() MethodRemover {
	return &remover{removed: sets.New[string]()}
}

func (r *remover) RemoveMethod(m reflection.Method) {
	if m != nil {
		r.RemoveMethodNamed(m.Name())
	}
}

func (r *remover) RemoveMethodNamed(name string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.removed.Insert(name)
}

func (r *remover) IsRemoved(m reflection.Method) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.removed.Has(m.Name())
}

func (r *remover) Removed() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return sets.List(r.removed)
}
