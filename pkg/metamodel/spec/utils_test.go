package spec_test

import (
	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/metamodel/factories"
	"github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
)

func M(name, result string, params ...string) reflection.MethodSpec {
	return reflection.NewMethodSpec(name, result, params...)
}

func newClass(name string, super reflection.Class, methods ...reflection.MethodSpec) reflection.Class {
	spec := reflection.ClassSpec{Name: name, Methods: methods}
	if super != nil {
		spec.Super = super.Name()
	}
	return Must(reflection.NewClass(spec, super))
}

func customerMethods(hideCancel bool) []reflection.MethodSpec {
	return []reflection.MethodSpec{
		M("getFirstName", "string"),
		M("setFirstName", "", "string"),
		M("validateFirstName", "string", "string"),
		M("getOrders", "[]Order"),
		M("addToOrders", "", "Order"),
		M("placeOrder", "", "Order", "int"),
		M("validatePlaceOrder", "string", "Order", "int"),
		M("alwaysHidePlaceOrder", "bool").AsStatic().WithValue(true),
		M("cancelOrder", ""),
		M("alwaysHideCancelOrder", "bool").AsStatic().WithValue(hideCancel),
		M("debugAnActionWithDebugPrefix", ""),
		M("hideFoo", "bool"),
	}
}

func customer() reflection.Class {
	return newClass("Customer", nil, customerMethods(false)...)
}

// namer names every action, conflicting with the static name method.
type namer struct {
	factories.FactoryBase
}

func (f *namer) Process(ctx *factories.ProcessMethodContext) error {
	return ctx.Holder.AddFacet(facets.NewNamed(f.Name(), "fixed"))
}

func newNamer() factories.FacetFactory {
	return &namer{factories.NewFactoryBase("TestNamer", facetapi.ActionsOnly())}
}
