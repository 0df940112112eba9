package facetapi

import (
	"fmt"
	"sync"

	"github.com/mandelsoft/facets/pkg/utils"
)

// FacetHolder keeps the active facet for every kind.
// It is modified while a specification is built and frozen
// afterwards.
type FacetHolder interface {
	HolderName() string

	// AddFacet installs a facet according to the composition rules:
	//   - a new kind is installed.
	//   - an equivalent facet is ignored.
	//   - a fallback never replaces an installed facet, but is
	//     replaced by any other facet.
	//   - a facet with Wrap composition is installed with the
	//     installed facet as underlying.
	//   - a facet with Override composition replaces the installed one.
	// All other cases are rejected with a ConflictError
	// leaving the holder unchanged.
	AddFacet(f Facet) error
	GetFacet(kind Kind) Facet
	ContainsFacet(kind Kind) bool
	// Facets returns the active facets ordered by kind.
	Facets() []Facet
	Kinds() []Kind

	Freeze()
	IsFrozen() bool
}

type holder struct {
	lock   sync.RWMutex
	name   string
	facets map[Kind]Facet
	frozen bool
}

var _ FacetHolder = (*holder)(nil)

func NewFacetHolder(name string) FacetHolder {
	return &holder{name: name, facets: map[Kind]Facet{}}
}

func (h *holder) HolderName() string {
	return h.name
}

func (h *holder) AddFacet(f Facet) error {
	if utils.IsNil(f) {
		return fmt.Errorf("no facet given for %s", h.name)
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	if h.frozen {
		return fmt.Errorf("%w: cannot add %s facet to %s", ErrFrozen, f.Kind(), h.name)
	}

	old := h.facets[f.Kind()]
	switch {
	case old == nil:
		log.Trace("install {{kind}} facet for {{holder}}", "kind", f.Kind(), "holder", h.name, "provenance", f.Provenance())
	case Equivalent(old, f):
		return nil
	case f.IsFallback():
		return nil
	case old.IsFallback():
		log.Trace("replace fallback {{kind}} facet for {{holder}}", "kind", f.Kind(), "holder", h.name, "provenance", f.Provenance())
	case f.Composition() == Wrap:
		log.Trace("wrap {{kind}} facet for {{holder}}", "kind", f.Kind(), "holder", h.name, "provenance", f.Provenance())
		f.SetUnderlying(old)
	case f.Composition() == Override:
		log.Trace("override {{kind}} facet for {{holder}}", "kind", f.Kind(), "holder", h.name, "provenance", f.Provenance())
	default:
		return NewConflictError(h.name, old, f)
	}
	h.facets[f.Kind()] = f
	return nil
}

func (h *holder) GetFacet(kind Kind) Facet {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.facets[kind]
}

func (h *holder) ContainsFacet(kind Kind) bool {
	return h.GetFacet(kind) != nil
}

func (h *holder) Kinds() []Kind {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return utils.OrderedMapKeys(h.facets)
}

func (h *holder) Facets() []Facet {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return utils.OrderedMapElements(h.facets)
}

func (h *holder) Freeze() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.frozen = true
}

func (h *holder) IsFrozen() bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.frozen
}

// GetFacet returns the facet of the given kind, if it
// has the requested type.
func GetFacet[T Facet](h FacetHolder, kind Kind) T {
	var _nil T
	if t, ok := h.GetFacet(kind).(T); ok {
		return t
	}
	return _nil
}

// ChainProvenances lists the provenances of a decorator chain.
func ChainProvenances(f Facet) []string {
	return utils.TransformSlice(Chain(f), Facet.Provenance)
}
