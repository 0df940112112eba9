package spec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/factories"
	"github.com/mandelsoft/facets/pkg/metamodel/inventory"
	"github.com/mandelsoft/facets/pkg/metamodel/progmodel"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Assembler builds the specification of a single class.
// Every call works on its own holders and method remover, so
// a failed build leaves no traces.
type Assembler struct {
	model *progmodel.ProgrammingModel
}

func NewAssembler(pm *progmodel.ProgrammingModel) *Assembler {
	if pm == nil {
		pm = progmodel.Default()
	}
	return &Assembler{model: pm}
}

func (a *Assembler) Model() *progmodel.ProgrammingModel {
	return a.model
}

// Assemble builds the specification for a class. The specification
// of the supertype must already be built.
func (a *Assembler) Assemble(c reflection.Class, super Specification) (Specification, error) {
	if utils.IsNil(c) {
		return nil, fmt.Errorf("no class given")
	}
	if c.Super() != nil && (super == nil || super.ID() != c.Super().Name()) {
		return nil, fmt.Errorf("class %s: specification of supertype %s required", c.Name(), c.Super().Name())
	}
	if super != nil && super.State() != Built {
		return nil, fmt.Errorf("class %s: supertype specification %s is %s", c.Name(), super.ID(), super.State())
	}

	s := newSpecification(c, super, uuid.New().String())
	log := log.WithValues("class", c.Name(), "build", s.buildid)
	s.setState(Building)
	log.Debug("building specification for {{class}}")

	err := a.assemble(s)
	if err != nil {
		s.setState(Failed)
		log.LogError(err, "build of {{class}} failed")
		return nil, fmt.Errorf("class %s: %w", c.Name(), err)
	}

	s.freeze()
	s.setState(Built)
	log.Debug("specification for {{class}} built", "members", len(s.members), "unclassified", len(s.unclassified))
	return s, nil
}

func (a *Assembler) assemble(s *specification) error {
	c := s.class
	inv := inventory.New(c, inventory.NewMethodRemover())

	cctx := factories.NewProcessClassContext(c, inv.Remover(), s.FacetHolder)
	for _, f := range a.model.ClassFactories() {
		if err := f.ProcessClass(cctx); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}

	// accessors must be identified before actions, so that the support
	// methods of properties and collections are not taken as actions.
	for _, m := range inv.PropertyAccessors() {
		if err := a.member(s, inv, facetapi.FeatureProperty, inventory.AccessorMemberName(m), m); err != nil {
			return err
		}
	}
	for _, m := range inv.CollectionAccessors() {
		if err := a.member(s, inv, facetapi.FeatureCollection, inventory.AccessorMemberName(m), m); err != nil {
			return err
		}
	}
	for _, m := range inv.ActionCandidates() {
		if inv.Remover().IsRemoved(m) {
			continue
		}
		if err := a.member(s, inv, facetapi.FeatureAction, m.Name(), m); err != nil {
			return err
		}
	}

	s.unclassified = utils.TransformSlice(inv.Unclassified(), reflection.Method.Name)
	if len(s.unclassified) > 0 {
		log.Info("unclassified support methods in {{class}}: {{methods}}", "class", c.Name(), "methods", strings.Join(s.unclassified, ", "))
	}

	slices.SortStableFunc(s.members, compareMembers)

	digest, err := utils.HashData(digestFor(s))
	if err != nil {
		return fmt.Errorf("cannot calculate digest: %w", err)
	}
	s.digest = digest
	return nil
}

func (a *Assembler) member(s *specification, inv *inventory.Inventory, ft facetapi.FeatureType, id string, m reflection.Method) error {
	if s.byID[id] != nil {
		return facetapi.MetaModelErrorf("duplicate member %q (%s and %s)", id, s.byID[id].Method().Name(), m.Name())
	}
	mem := &Member{
		FacetedMethod: facetapi.NewFacetedMethod(ft, s.class, id, m),
		distance:      distance(s.class, m.DeclaringClass()),
	}
	ctx := factories.NewProcessMethodContext(s.class, inv.Remover(), mem.FacetedMethod)
	for _, f := range a.model.FactoriesFor(ft) {
		if err := f.Process(ctx); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}
	// the member method is always consumed, even if no factory did it.
	inv.Remover().RemoveMethod(m)
	s.members = append(s.members, mem)
	s.byID[id] = mem
	return nil
}

func distance(c, declaring reflection.Class) int {
	for i, h := range reflection.Hierarchy(c) {
		if h.Name() == declaring.Name() {
			return i
		}
	}
	return 0
}

// compareMembers orders members with a member order annotation
// first (by sequence), followed by the others ordered by the
// hierarchy distance (closest class first) and name.
func compareMembers(a, b *Member) int {
	sa, oka := memberOrder(a)
	sb, okb := memberOrder(b)
	switch {
	case oka && okb:
		if c := compareSequence(sa, sb); c != 0 {
			return c
		}
	case oka:
		return -1
	case okb:
		return 1
	}
	if a.distance != b.distance {
		return a.distance - b.distance
	}
	return strings.Compare(a.Identifier(), b.Identifier())
}

func memberOrder(m *Member) (string, bool) {
	f := facetapi.GetFacet[*facets.ValueFacet[string]](m, facets.KindMemberOrder)
	if f == nil {
		return "", false
	}
	return f.Get(), true
}

// compareSequence compares dewey decimal sequences (1.2 < 1.10).
func compareSequence(a, b string) int {
	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		na, erra := strconv.Atoi(strings.TrimSpace(pa[i]))
		nb, errb := strconv.Atoi(strings.TrimSpace(pb[i]))
		var c int
		if erra == nil && errb == nil {
			c = na - nb
		} else {
			c = strings.Compare(pa[i], pb[i])
		}
		if c != 0 {
			return c
		}
	}
	return len(pa) - len(pb)
}
