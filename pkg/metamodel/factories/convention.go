package factories

import (
	"fmt"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	"github.com/mandelsoft/facets/pkg/reflection"
)

// Builder creates the facet for a matched support method.
// A nil facet consumes the method without installing anything.
type Builder func(ctx *ProcessMethodContext, m reflection.Method) (facetapi.Facet, error)

// Check validates preconditions before a facet is installed.
type Check func(ctx *ProcessMethodContext, m reflection.Method) error

// Convention is a factory for a single support method
// convention given by a name prefix, a signature matcher and
// a facet builder.
type Convention struct {
	FactoryBase
	prefix string
	match  Matcher
	build  Builder
	check  Check
}

var (
	_ FacetFactory    = (*Convention)(nil)
	_ PrefixedFactory = (*Convention)(nil)
)

func NewConvention(name string, features facetapi.FeatureTypes, prefix string, match Matcher, build Builder) *Convention {
	return &Convention{
		FactoryBase: NewFactoryBase(name, features),
		prefix:      prefix,
		match:       match,
		build:       build,
	}
}

// WithCheck adds a precondition check executed for matching methods.
func (c *Convention) WithCheck(check Check) *Convention {
	c.check = check
	return c
}

func (c *Convention) Prefixes() []string {
	return []string{c.prefix}
}

func (c *Convention) Process(ctx *ProcessMethodContext) error {
	m := ctx.FindSupport(c.prefix)
	if m == nil || !c.match(ctx, m) {
		return nil
	}
	return install(ctx, c.Name(), m, ctx.Holder, c.check, c.build)
}

func install(ctx *ProcessMethodContext, name string, m reflection.Method, h facetapi.FacetHolder, check Check, build Builder) error {
	if check != nil {
		if err := check(ctx, m); err != nil {
			return err
		}
	}
	f, err := build(ctx, m)
	if err != nil {
		return err
	}
	if f != nil {
		if err := h.AddFacet(f); err != nil {
			return err
		}
		log.Trace("{{factory}} installed {{kind}} for {{member}}", "factory", name, "kind", f.Kind(), "member", h.HolderName(), "method", m.Name())
	}
	ctx.Remover.RemoveMethod(m)
	return nil
}

// NumberedConvention is a factory for support methods addressing
// a dedicated action parameter by its index (default0PlaceOrder).
// The facet is installed on the parameter holder.
type NumberedConvention struct {
	FactoryBase
	prefix string
	match  func(ctx *ProcessMethodContext, p *facetapi.Parameter, m reflection.Method) bool
	build  Builder
	check  Check
}

var (
	_ FacetFactory    = (*NumberedConvention)(nil)
	_ PrefixedFactory = (*NumberedConvention)(nil)
)

func NewNumberedConvention(name string, prefix string, match func(ctx *ProcessMethodContext, p *facetapi.Parameter, m reflection.Method) bool, build Builder) *NumberedConvention {
	return &NumberedConvention{
		FactoryBase: NewFactoryBase(name, facetapi.ActionsOnly()),
		prefix:      prefix,
		match:       match,
		build:       build,
	}
}

func (c *NumberedConvention) WithCheck(check Check) *NumberedConvention {
	c.check = check
	return c
}

func (c *NumberedConvention) Prefixes() []string {
	return []string{c.prefix}
}

func (c *NumberedConvention) Process(ctx *ProcessMethodContext) error {
	for _, p := range ctx.Holder.Parameters() {
		m := ctx.FindSupport(c.prefix, p.Index())
		if m == nil || !c.match(ctx, p, m) {
			continue
		}
		err := install(ctx, c.Name(), m, p, c.check, c.build)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", p.Index(), err)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// MethodFacet provides a builder for facets bound to the
// support method.
func MethodFacet(kind facetapi.Kind, provenance string, opts ...facetapi.FacetOption) Builder {
	return func(ctx *ProcessMethodContext, m reflection.Method) (facetapi.Facet, error) {
		return facets.NewMethodFacet(kind, provenance, m, opts...), nil
	}
}

// invokeStatic evaluates a static support method at build time.
func invokeStatic(m reflection.Method) (any, error) {
	r, err := m.Invoke(nil)
	if err != nil {
		return nil, facetapi.NewInvocationError(m.Key(), err)
	}
	if len(r) == 0 {
		return nil, facetapi.NewInvocationError(m.Key(), fmt.Errorf("no result"))
	}
	return r[0], nil
}
