package facetapi

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/facets/pkg/reflection"
)

// FacetedMethod is the facet holder for a class member
// backed by its primary method.
type FacetedMethod struct {
	FacetHolder
	featureType FeatureType
	id          string
	owner       reflection.Class
	method      reflection.Method
	typ         reflection.TypeRef
	params      []*Parameter
}

// NewFacetedMethod creates a holder for a member of class owner.
// Actions get one parameter holder for every method parameter.
func NewFacetedMethod(ft FeatureType, owner reflection.Class, id string, m reflection.Method) *FacetedMethod {
	fm := &FacetedMethod{
		FacetHolder: NewFacetHolder(fmt.Sprintf("%s %s.%s", ft, owner.ShortName(), id)),
		featureType: ft,
		id:          id,
		owner:       owner,
		method:      m,
		typ:         m.Result(),
	}
	if ft == FeatureAction {
		for i, p := range m.Params() {
			fm.params = append(fm.params, &Parameter{
				FacetHolder: NewFacetHolder(fmt.Sprintf("parameter %d of %s", i, fm.HolderName())),
				index:       i,
				typ:         p,
				action:      fm,
			})
		}
	}
	return fm
}

func (m *FacetedMethod) FeatureType() FeatureType {
	return m.featureType
}

// Identifier is the member id (action method name or
// property/collection name).
func (m *FacetedMethod) Identifier() string {
	return m.id
}

// Owner is the class the member is specified for.
func (m *FacetedMethod) Owner() reflection.Class {
	return m.owner
}

func (m *FacetedMethod) Method() reflection.Method {
	return m.method
}

func (m *FacetedMethod) Type() reflection.TypeRef {
	return m.typ
}

func (m *FacetedMethod) Parameters() []*Parameter {
	return slices.Clone(m.params)
}

func (m *FacetedMethod) Parameter(i int) *Parameter {
	if i < 0 || i >= len(m.params) {
		return nil
	}
	return m.params[i]
}

func (m *FacetedMethod) Freeze() {
	m.FacetHolder.Freeze()
	for _, p := range m.params {
		p.Freeze()
	}
}

func (m *FacetedMethod) String() string {
	return m.HolderName()
}

// Parameter is the facet holder for an action parameter.
type Parameter struct {
	FacetHolder
	index  int
	typ    reflection.TypeRef
	action *FacetedMethod
}

func (p *Parameter) Index() int {
	return p.index
}

func (p *Parameter) Type() reflection.TypeRef {
	return p.typ
}

func (p *Parameter) Action() *FacetedMethod {
	return p.action
}
