package spec_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/facets/pkg/metamodel/facetapi"
	"github.com/mandelsoft/facets/pkg/metamodel/facets"
	me "github.com/mandelsoft/facets/pkg/metamodel/spec"
	"github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
)

type Account struct {
	balance int
}

func (a *Account) Transfer(amount int) {
	a.balance -= amount
}

func (a *Account) ChoicesTransfer() []int {
	return []int{1, 2}
}

func (a *Account) GetBalance() int {
	return a.balance
}

type SavingsAccount struct {
	Account
}

func (a *SavingsAccount) ChoicesTransfer() []int {
	return []int{10}
}

type Shipment struct{}

func (s *Shipment) Dispatch(count int, weight int64) {}

func (s *Shipment) Choices0Dispatch() []int {
	return []int{1}
}

type ExpressShipment struct {
	Shipment
}

func (s *ExpressShipment) Choices0Dispatch() []int {
	return []int{2}
}

func (s *ExpressShipment) Choices1Dispatch() []int64 {
	return []int64{100, 200}
}

func (s *ExpressShipment) DisableDispatch(count int, weight int64) string {
	return ""
}

// cyclic simulates a broken class source.
type cyclic struct {
	reflection.Class
	super reflection.Class
}

func (c *cyclic) Super() reflection.Class {
	return c.super
}

var _ = Describe("loader", func() {
	var loader *me.Loader
	var ctx context.Context

	BeforeEach(func() {
		loader = me.NewLoader(nil)
		ctx = context.Background()
	})

	It("loads go types including supertypes", func() {
		s := Must(loader.LoadType(ctx, reflect.TypeOf(SavingsAccount{})))
		Expect(s.State()).To(Equal(me.Built))
		Expect(s.Super()).NotTo(BeNil())
		Expect(s.Super().Class().ShortName()).To(Equal("Account"))
		Expect(loader.Lookup(s.Super().ID())).To(BeIdenticalTo(s.Super()))
		Expect(loader.Specifications()).To(HaveLen(2))

		Expect(ids(s.Properties())).To(Equal([]string{"Balance"}))
		Expect(ids(s.Actions())).To(Equal([]string{"Transfer"}))
	})

	It("uses overridden support methods of subclasses", func() {
		s := Must(loader.LoadType(ctx, reflect.TypeOf(SavingsAccount{})))

		a := s.Action("Transfer")
		Expect(a.Distance()).To(Equal(1))
		f := facetapi.GetFacet[*facets.MethodFacet](a, facets.KindActionChoices)
		Expect(f).NotTo(BeNil())
		Expect(f.Method().DeclaringClass().ShortName()).To(Equal("SavingsAccount"))
		Expect(f.Invoke(&SavingsAccount{})).To(Equal([]any{[]int{10}}))

		base := s.Super().Action("Transfer")
		f = facetapi.GetFacet[*facets.MethodFacet](base, facets.KindActionChoices)
		Expect(f.Invoke(&Account{})).To(Equal([]any{[]int{1, 2}}))
	})

	It("uses overridden and added parameter support methods of subclasses", func() {
		s := Must(loader.LoadType(ctx, reflect.TypeOf(ExpressShipment{})))

		a := s.Action("Dispatch")
		Expect(a).NotTo(BeNil())
		Expect(a.Distance()).To(Equal(1))
		Expect(a.Parameters()).To(HaveLen(2))

		f := facetapi.GetFacet[*facets.MethodFacet](a.Parameter(0), facets.KindParameterChoices)
		Expect(f).NotTo(BeNil())
		Expect(f.Method().DeclaringClass().ShortName()).To(Equal("ExpressShipment"))
		Expect(f.Invoke(&ExpressShipment{})).To(Equal([]any{[]int{2}}))

		f = facetapi.GetFacet[*facets.MethodFacet](a.Parameter(1), facets.KindParameterChoices)
		Expect(f).NotTo(BeNil())
		Expect(f.Method().DeclaringClass().ShortName()).To(Equal("ExpressShipment"))

		f = facetapi.GetFacet[*facets.MethodFacet](a, facets.KindDisabledForContext)
		Expect(f).NotTo(BeNil())
		Expect(f.Method().Name()).To(Equal("DisableDispatch"))

		base := s.Super().Action("Dispatch")
		f = facetapi.GetFacet[*facets.MethodFacet](base.Parameter(0), facets.KindParameterChoices)
		Expect(f.Method().DeclaringClass().ShortName()).To(Equal("Shipment"))
		Expect(base.Parameter(1).GetFacet(facets.KindParameterChoices)).To(BeNil())
		Expect(base.GetFacet(facets.KindDisabledForContext)).To(BeNil())
	})

	It("caches specifications", func() {
		c := customer()
		s := Must(loader.Load(ctx, c))
		Expect(Must(loader.Load(ctx, c))).To(BeIdenticalTo(s))
		Expect(loader.State("Customer")).To(Equal(me.Built))
		Expect(loader.State("Unknown")).To(Equal(me.Unbuilt))
	})

	It("caches failures", func() {
		c := newClass("Broken", nil,
			M("placeOrder", "", "int"),
			M("defaultPlaceOrder", "[]any"),
			M("default0PlaceOrder", "int"),
		)
		_, err := loader.Load(ctx, c)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, facetapi.ErrMetaModel)).To(BeTrue())
		Expect(loader.State("Broken")).To(Equal(me.Failed))
		Expect(loader.Lookup("Broken")).To(BeNil())
		Expect(loader.Failures()).To(HaveKey("Broken"))

		_, err2 := loader.Load(ctx, c)
		Expect(err2).To(BeIdenticalTo(err))
	})

	It("fails for failed supertypes", func() {
		base := newClass("Broken", nil,
			M("placeOrder", "", "int"),
			M("defaultPlaceOrder", "[]any"),
			M("default0PlaceOrder", "int"),
		)
		_, err := loader.Load(ctx, newClass("Sub", base))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("class Sub: supertype Broken: "))
		Expect(loader.State("Sub")).To(Equal(me.Failed))
	})

	It("builds once for concurrent requests", func() {
		var calls atomic.Int32
		c := newClass("Customer", nil,
			M("placeOrder", ""),
			M("namePlaceOrder", "string").AsStatic().WithFunc(func(target any, args ...any) ([]any, error) {
				calls.Add(1)
				return []any{"Order"}, nil
			}),
		)

		var wg sync.WaitGroup
		results := make([]me.Specification, 10)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				results[i] = Must(loader.Load(ctx, c))
			}(i)
		}
		wg.Wait()

		Expect(calls.Load()).To(Equal(int32(1)))
		for _, s := range results {
			Expect(s).To(BeIdenticalTo(results[0]))
		}
		Expect(facetapi.GetFacet[*facets.ValueFacet[string]](results[0].Action("placeOrder"), facets.KindNamed).Get()).To(Equal("Order"))
	})

	It("detects cyclic hierarchies", func() {
		a := &cyclic{Class: newClass("A", nil)}
		b := &cyclic{Class: newClass("B", nil), super: a}
		a.super = b

		_, err := loader.Load(ctx, a)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, me.ErrCyclicHierarchy)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("A->B->A"))
		Expect(loader.State("A")).To(Equal(me.Failed))
	})

	It("rejects requests after shutdown", func() {
		Must(loader.Load(ctx, customer()))
		loader.Shutdown()
		_, err := loader.Load(ctx, customer())
		Expect(err).To(MatchError(me.ErrShutdown))
		Expect(loader.Lookup("Customer")).To(BeNil())
		Expect(loader.Specifications()).To(BeEmpty())
	})
})
