package reflection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
	"github.com/mandelsoft/facets/pkg/utils"
)

var doc = `
classes:
- name: Derived
  super: Base
  methods:
  - name: choicesPlaceOrder
    result: "[]string"
    value: [ "x", "y" ]
- name: Base
  annotations:
    Named: Base Object
  methods:
  - name: placeOrder
    params: [ string, int ]
  - name: alwaysHidePlaceOrder
    result: bool
    static: true
    value: true
`

var _ = Describe("class registry", func() {
	var reg *me.Registry

	BeforeEach(func() {
		reg = me.NewRegistry()
	})

	It("defines classes from documents", func() {
		d := Must(me.ParseDocument([]byte(doc)))
		classes := Must(d.Define(reg))
		Expect(utils.TransformSlice(classes, me.Class.Name)).To(Equal([]string{"Derived", "Base"}))
		Expect(reg.ClassNames()).To(Equal([]string{"Base", "Derived"}))

		c := reg.GetClass("Derived")
		Expect(c.Super()).To(BeIdenticalTo(reg.GetClass("Base")))
		Expect(c.Method("placeOrder").Params()[1].Kind).To(Equal(me.KindNumber))
		Expect(c.Method("alwaysHidePlaceOrder").Invoke(nil)).To(Equal([]any{true}))
		Expect(c.Method("choicesPlaceOrder").Invoke(c)).To(Equal([]any{[]any{"x", "y"}}))
	})

	It("resolves supertypes from the registry", func() {
		Must(reg.Define(me.ClassSpec{Name: "Base"}))
		list := Must(reg.Define(me.ClassSpec{Name: "Derived", Super: "Base"}))
		Expect(list[0].Super().Name()).To(Equal("Base"))
	})

	It("registers go classes", func() {
		c := Must(me.Of[Derived]())
		MustBeSuccessful(reg.Register(c))
		MustBeSuccessful(reg.Register(c))
		Expect(reg.GetClass(c.Name())).To(BeIdenticalTo(c))
	})

	It("writes documents", func() {
		d := Must(me.ParseDocument([]byte(doc)))
		Must(d.Define(reg))
		out := Must(me.DocumentFor(reg.GetClass("Base")))
		data := Must(out.Data())
		Expect("\n" + string(data)).To(Equal(`
classes:
- annotations:
    Named: Base Object
  methods:
  - name: alwaysHidePlaceOrder
    result: bool
    static: true
    value: true
  - name: placeOrder
    params:
    - string
    - int
  name: Base
`))
	})

	Context("errors", func() {
		It("rejects cycles", func() {
			_, err := reg.Define(me.ClassSpec{Name: "A", Super: "B"}, me.ClassSpec{Name: "B", Super: "A"})
			MustFailWithMessage(err, `supertype of "A": supertype of "B": cyclic class hierarchy: A->B->A`)
			Expect(reg.ClassNames()).To(BeEmpty())
		})

		It("rejects unknown supertypes", func() {
			_, err := reg.Define(me.ClassSpec{Name: "A", Super: "B"})
			MustFailWithMessage(err, `supertype of "A": unknown class "B"`)
		})

		It("rejects duplicates", func() {
			Must(reg.Define(me.ClassSpec{Name: "A"}))
			_, err := reg.Define(me.ClassSpec{Name: "A"})
			MustFailWithMessage(err, `class "A" already registered`)
		})

		It("rejects unknown fields", func() {
			_, err := me.ParseDocument([]byte("classes:\n- name: A\n  supr: B\n"))
			Expect(err).To(HaveOccurred())
		})
	})
})
