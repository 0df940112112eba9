package factories

import (
	"slices"

	"github.com/mandelsoft/facets/pkg/reflection"
)

// Matcher is a signature predicate for a support method.
type Matcher func(ctx *ProcessMethodContext, m reflection.Method) bool

func All(matchers ...Matcher) Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		for _, e := range matchers {
			if !e(ctx, m) {
				return false
			}
		}
		return true
	}
}

func Any(matchers ...Matcher) Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		for _, e := range matchers {
			if e(ctx, m) {
				return true
			}
		}
		return false
	}
}

func NoParams() Matcher {
	return ParamKinds()
}

// ParamKinds requires parameters of the given kinds.
func ParamKinds(kinds ...reflection.Kind) Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		p := m.Params()
		if len(p) != len(kinds) {
			return false
		}
		for i, k := range kinds {
			if p[i].Kind != k {
				return false
			}
		}
		return true
	}
}

// ParamCount requires a number of parameters of any type.
func ParamCount(n int) Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return len(m.Params()) == n
	}
}

// SameParams requires the parameters of the primary method.
func SameParams() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return reflection.SameParams(m.Params(), ctx.Method.Params())
	}
}

// MemberTypeParam requires a single parameter of the member type.
func MemberTypeParam() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return reflection.SameParams(m.Params(), []reflection.TypeRef{ctx.Holder.Type()})
	}
}

func Returns(kinds ...reflection.Kind) Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return slices.Contains(kinds, m.Result().Kind)
	}
}

func ReturnsVoid() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return m.Result().IsVoid()
	}
}

func ReturnsValue() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return !m.Result().IsVoid()
	}
}

// ReturnsMemberType requires the result type of the member.
func ReturnsMemberType() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return m.Result() == ctx.Holder.Type()
	}
}

func IsStatic() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return m.Static()
	}
}

// HasParams requires the primary method to have parameters.
func HasParams() Matcher {
	return func(ctx *ProcessMethodContext, m reflection.Method) bool {
		return len(ctx.Method.Params()) > 0
	}
}
