package progmodel

import (
	"fmt"
	"io"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/factories"
	"github.com/mandelsoft/facets/pkg/utils"
)

// ProgrammingModel is the ordered list of facet factories
// used to build specifications.
type ProgrammingModel struct {
	factories []factories.FacetFactory
	byName    map[string]factories.FacetFactory
}

func New(list ...factories.FacetFactory) (*ProgrammingModel, error) {
	p := &ProgrammingModel{byName: map[string]factories.FacetFactory{}}
	for _, f := range list {
		if utils.IsNil(f) {
			return nil, fmt.Errorf("nil factory")
		}
		if p.byName[f.Name()] != nil {
			return nil, fmt.Errorf("duplicate factory %q", f.Name())
		}
		p.byName[f.Name()] = f
		p.factories = append(p.factories, f)
	}
	return p, nil
}

// Default provides the programming model with all
// built-in factories.
func Default() *ProgrammingModel {
	p, err := New(factories.Builtin()...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *ProgrammingModel) Factories() []factories.FacetFactory {
	return slices.Clone(p.factories)
}

func (p *ProgrammingModel) Names() []string {
	return utils.TransformSlice(p.factories, factories.FacetFactory.Name)
}

func (p *ProgrammingModel) Get(name string) factories.FacetFactory {
	return p.byName[name]
}

// ClassFactories returns the factories processing classes in order.
func (p *ProgrammingModel) ClassFactories() []factories.ClassFacetFactory {
	var r []factories.ClassFacetFactory
	for _, f := range p.factories {
		if c, ok := f.(factories.ClassFacetFactory); ok {
			r = append(r, c)
		}
	}
	return r
}

// FactoriesFor returns the factories applicable to the given
// feature type in order.
func (p *ProgrammingModel) FactoriesFor(ft facetapi.FeatureType) []factories.FacetFactory {
	return utils.FilterSlice(p.factories, func(f factories.FacetFactory) bool {
		return factories.Applies(f, ft)
	})
}

// Prefixes returns the set of method name prefixes
// recognized by the factories.
func (p *ProgrammingModel) Prefixes() sets.Set[string] {
	s := sets.New[string]()
	for _, f := range p.factories {
		if pf, ok := f.(factories.PrefixedFactory); ok {
			s.Insert(pf.Prefixes()...)
		}
	}
	return s
}

// Exclude provides a new model without the given factories.
func (p *ProgrammingModel) Exclude(names ...string) (*ProgrammingModel, error) {
	excl := sets.New(names...)
	for _, n := range sets.List(excl) {
		if p.byName[n] == nil {
			return nil, fmt.Errorf("unknown factory %q", n)
		}
	}
	return New(utils.FilterSlice(p.factories, func(f factories.FacetFactory) bool {
		return !excl.Has(f.Name())
	})...)
}

// Select provides a new model with the given factories
// in the given order.
func (p *ProgrammingModel) Select(names ...string) (*ProgrammingModel, error) {
	var list []factories.FacetFactory
	for _, n := range names {
		f := p.byName[n]
		if f == nil {
			return nil, fmt.Errorf("unknown factory %q", n)
		}
		list = append(list, f)
	}
	return New(list...)
}

func (p *ProgrammingModel) Dump(w io.Writer) {
	for i, f := range p.factories {
		kind := "member"
		if _, ok := f.(factories.ClassFacetFactory); ok {
			kind = "class"
		}
		fmt.Fprintf(w, "%2d %-28s %-6s %s\n", i+1, f.Name(), kind,
			utils.Join(sets.List(f.FeatureTypes()), ","))
	}
}
