package inventory

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/facets/pkg/metamodel/naming"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

// FrameworkMethods are never considered as members.
var FrameworkMethods = sets.New("MemberAnnotations", "memberAnnotations", "String")

// Inventory partitions the method view of a class into
// accessor candidates, action candidates and support methods.
// Partitioning always respects the methods already consumed
// by the remover.
type Inventory struct {
	class   reflection.Class
	remover MethodRemover
}

func New(c reflection.Class, r MethodRemover) *Inventory {
	if r == nil {
		r = NewMethodRemover()
	}
	return &Inventory{class: c, remover: r}
}

func (i *Inventory) Class() reflection.Class {
	return i.class
}

func (i *Inventory) Remover() MethodRemover {
	return i.remover
}

// Remaining returns all methods not consumed so far.
func (i *Inventory) Remaining() []reflection.Method {
	return utils.FilterSlice(i.class.Methods(), func(m reflection.Method) bool {
		return !FrameworkMethods.Has(m.Name()) && !i.remover.IsRemoved(m)
	})
}

// IsAccessor checks for the accessor convention get<Member>()
// with non-void result.
func IsAccessor(m reflection.Method) bool {
	return naming.HasPrefix(m.Name(), naming.Get) && len(m.Params()) == 0 && !m.Result().IsVoid()
}

// AccessorMemberName provides the member name for an accessor.
func AccessorMemberName(m reflection.Method) string {
	tail, _ := naming.TrimPrefix(m.Name(), naming.Get)
	return naming.MemberName(m.Name(), tail)
}

// PropertyAccessors returns accessors with non-collection result.
func (i *Inventory) PropertyAccessors() []reflection.Method {
	return utils.FilterSlice(i.Remaining(), func(m reflection.Method) bool {
		return IsAccessor(m) && m.Result().Kind != reflection.KindCollection
	})
}

// CollectionAccessors returns accessors with collection result.
func (i *Inventory) CollectionAccessors() []reflection.Method {
	return utils.FilterSlice(i.Remaining(), func(m reflection.Method) bool {
		return IsAccessor(m) && m.Result().Kind == reflection.KindCollection
	})
}

// ActionCandidates returns the remaining methods neither being
// accessors nor carrying a support prefix.
func (i *Inventory) ActionCandidates() []reflection.Method {
	return utils.FilterSlice(i.Remaining(), func(m reflection.Method) bool {
		return !IsAccessor(m) && !naming.IsSupportMethod(m.Name())
	})
}

// Unclassified returns the remaining methods carrying a support
// prefix, which are not consumed by any convention.
func (i *Inventory) Unclassified() []reflection.Method {
	return utils.FilterSlice(i.Remaining(), func(m reflection.Method) bool {
		return naming.IsSupportMethod(m.Name())
	})
}
