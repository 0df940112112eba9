package reflection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/facets/pkg/applib"
	me "github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
)

var _ = Describe("declared classes", func() {
	var base me.Class

	BeforeEach(func() {
		base = Must(me.NewClass(me.ClassSpec{
			Name:        "Base",
			Annotations: applib.Annotations{applib.Plural: "Bases"},
			Methods: []me.MethodSpec{
				me.NewMethodSpec("someAction", "", "int", "int64"),
				me.NewMethodSpec("choicesSomeAction", "[]int").WithValue([]any{1, 2}),
				me.NewMethodSpec("alwaysHideSomeAction", "bool").AsStatic().WithValue(true),
			},
		}, nil))
	})

	It("parses type references", func() {
		Expect(me.ParseTypeRef("")).To(Equal(me.Void))
		Expect(me.ParseTypeRef("int64").Kind).To(Equal(me.KindNumber))
		Expect(me.ParseTypeRef("[]string").Kind).To(Equal(me.KindCollection))
		Expect(me.ParseTypeRef("map[string]int").Kind).To(Equal(me.KindCollection))
		Expect(me.ParseTypeRef("user").Kind).To(Equal(me.KindUser))
		Expect(me.ParseTypeRef("*applib.User").Kind).To(Equal(me.KindUser))
		Expect(me.ParseTypeRef("Customer").Kind).To(Equal(me.KindObject))
	})

	It("describes methods", func() {
		Expect(base.Annotations()).To(HaveKeyWithValue(applib.Plural, "Bases"))
		Expect(names(base.Methods())).To(Equal([]string{"alwaysHideSomeAction", "choicesSomeAction", "someAction"}))
		m := base.Method("someAction")
		Expect(m.Result().IsVoid()).To(BeTrue())
		Expect(m.Params()).To(HaveLen(2))
		Expect(m.Key()).To(Equal("Base#someAction"))
	})

	It("inherits and overrides methods", func() {
		c := Must(me.NewClass(me.ClassSpec{
			Name:  "Derived",
			Super: "Base",
			Methods: []me.MethodSpec{
				me.NewMethodSpec("choicesSomeAction", "[]int").WithValue([]any{3}),
			},
		}, base))
		Expect(names(c.DeclaredMethods())).To(Equal([]string{"choicesSomeAction"}))
		Expect(names(c.Methods())).To(Equal([]string{"alwaysHideSomeAction", "choicesSomeAction", "someAction"}))
		Expect(c.Method("someAction").DeclaringClass()).To(BeIdenticalTo(base))
		Expect(c.Method("choicesSomeAction").Invoke(struct{}{})).To(Equal([]any{[]any{3}}))
	})

	It("invokes methods", func() {
		Expect(base.Method("alwaysHideSomeAction").Invoke(nil)).To(Equal([]any{true}))
		Expect(base.Method("someAction").Invoke(struct{}{}, 1, 2)).To(BeNil())

		_, err := base.Method("choicesSomeAction").Invoke(nil)
		MustFailWithMessage(err, "method Base#choicesSomeAction requires a target object")
		_, err = base.Method("someAction").Invoke(struct{}{}, 1)
		MustFailWithMessage(err, "method Base#someAction requires 2 argument(s), but 1 given")
	})

	It("invokes functions", func() {
		c := Must(me.NewClass(me.ClassSpec{
			Name: "Calc",
			Methods: []me.MethodSpec{
				me.NewMethodSpec("add", "int", "int", "int").WithFunc(func(target any, args ...any) ([]any, error) {
					return []any{args[0].(int) + args[1].(int)}, nil
				}),
			},
		}, nil))
		Expect(c.Method("add").Invoke(c, 1, 2)).To(Equal([]any{3}))
	})

	Context("errors", func() {
		It("rejects duplicate methods", func() {
			_, err := me.NewClass(me.ClassSpec{
				Name:    "Dup",
				Methods: []me.MethodSpec{me.NewMethodSpec("a", ""), me.NewMethodSpec("a", "int")},
			}, nil)
			MustFailWithMessage(err, `class "Dup": duplicate method "a"`)
		})

		It("rejects unresolved supertypes", func() {
			_, err := me.NewClass(me.ClassSpec{Name: "Derived", Super: "Base"}, nil)
			MustFailWithMessage(err, `class "Derived": supertype "Base" not resolved`)
		})

		It("rejects mismatching supertypes", func() {
			_, err := me.NewClass(me.ClassSpec{Name: "Derived", Super: "Other"}, base)
			MustFailWithMessage(err, `class "Derived": supertype mismatch ("Other" != "Base")`)
		})
	})
})
