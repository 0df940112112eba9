package factories_test

import (
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	me "github.com/mandelsoft/facets/pkg/metamodel/factories"
	"github.com/mandelsoft/facets/pkg/metamodel/inventory"
	"github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
)

func newClass(name string, methods ...reflection.MethodSpec) reflection.Class {
	return Must(reflection.NewClass(reflection.ClassSpec{Name: name, Methods: methods}, nil))
}

func M(name, result string, params ...string) reflection.MethodSpec {
	return reflection.NewMethodSpec(name, result, params...)
}

func actionContext(c reflection.Class, name string) *me.ProcessMethodContext {
	m := c.Method(name)
	ExpectWithOffset(1, m).NotTo(BeNil())
	return me.NewProcessMethodContext(c, inventory.NewMethodRemover(), facetapi.NewFacetedMethod(facetapi.FeatureAction, c, name, m))
}

func memberContext(c reflection.Class, ft facetapi.FeatureType, accessor string) *me.ProcessMethodContext {
	m := c.Method(accessor)
	ExpectWithOffset(1, m).NotTo(BeNil())
	return me.NewProcessMethodContext(c, inventory.NewMethodRemover(), facetapi.NewFacetedMethod(ft, c, inventory.AccessorMemberName(m), m))
}

func removed(ctx *me.ProcessMethodContext) []string {
	return ctx.Remover.Removed()
}
