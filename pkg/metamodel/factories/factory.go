package factories

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/inventory"
	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// FacetFactory is a rule inspecting a member and conditionally
// installing facets. A factory never fails for methods not matching
// its conventions.
type FacetFactory interface {
	Name() string
	// FeatureTypes are the kinds of members the factory applies to.
	FeatureTypes() facetapi.FeatureTypes
	Process(ctx *ProcessMethodContext) error
}

// ClassFacetFactory is implemented by factories installing
// facets for the class itself.
type ClassFacetFactory interface {
	FacetFactory
	ProcessClass(ctx *ProcessClassContext) error
}

// PrefixedFactory is implemented by factories consuming
// support methods with dedicated name prefixes.
type PrefixedFactory interface {
	Prefixes() []string
}

type ProcessClassContext struct {
	Class   reflection.Class
	Remover inventory.MethodRemover
	Holder  facetapi.FacetHolder
}

func NewProcessClassContext(c reflection.Class, r inventory.MethodRemover, h facetapi.FacetHolder) *ProcessClassContext {
	return &ProcessClassContext{Class: c, Remover: r, Holder: h}
}

// ProcessMethodContext describes a member to process.
// Class is the class the specification is built for. Support
// methods are always looked up in its most-derived method view,
// while the primary method might be inherited.
type ProcessMethodContext struct {
	Class   reflection.Class
	Method  reflection.Method
	Remover inventory.MethodRemover
	Holder  *facetapi.FacetedMethod
}

func NewProcessMethodContext(c reflection.Class, r inventory.MethodRemover, h *facetapi.FacetedMethod) *ProcessMethodContext {
	return &ProcessMethodContext{Class: c, Method: h.Method(), Remover: r, Holder: h}
}

func (c *ProcessMethodContext) FeatureType() facetapi.FeatureType {
	return c.Holder.FeatureType()
}

// SupportBase is the name support method names are composed for.
// It is the method name for actions and the member name otherwise.
func (c *ProcessMethodContext) SupportBase() string {
	if c.FeatureType() == facetapi.FeatureAction {
		return c.Method.Name()
	}
	return c.Holder.Identifier()
}

// FindSupport looks up the support method for the given prefix
// and optional parameter number.
func (c *ProcessMethodContext) FindSupport(prefix string, param ...int) reflection.Method {
	return c.Class.Method(naming.SupportName(prefix, c.SupportBase(), param...))
}

////////////////////////////////////////////////////////////////////////////////

// FactoryBase provides the name and feature types of a factory.
type FactoryBase struct {
	name     string
	features facetapi.FeatureTypes
}

func NewFactoryBase(name string, features facetapi.FeatureTypes) FactoryBase {
	return FactoryBase{name: name, features: features}
}

func (f *FactoryBase) Name() string {
	return f.name
}

func (f *FactoryBase) FeatureTypes() facetapi.FeatureTypes {
	return f.features
}

// Process does nothing. Class factories embedding the base don't
// need to implement it.
func (f *FactoryBase) Process(ctx *ProcessMethodContext) error {
	return nil
}

// Applies checks whether a factory is applicable to a feature type.
func Applies(f FacetFactory, ft facetapi.FeatureType) bool {
	return f.FeatureTypes().Has(ft)
}
