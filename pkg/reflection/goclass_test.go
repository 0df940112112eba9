package reflection_test

import (
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/facets/pkg/applib"
	me "github.com/mandelsoft/facets/pkg/reflection"
	. "github.com/mandelsoft/facets/pkg/testutils"
	"github.com/mandelsoft/facets/pkg/utils"
)

func names(list []me.Method) []string {
	return utils.TransformSlice(list, me.Method.Name)
}

var _ = Describe("go classes", func() {
	var in *me.Introspector

	BeforeEach(func() {
		in = me.NewIntrospector()
	})

	It("uses the first embedded struct as supertype", func() {
		c := Must(in.ForType(reflect.TypeOf(&Derived{})))
		Expect(c.ShortName()).To(Equal("Derived"))
		Expect(c.Super()).NotTo(BeNil())
		Expect(c.Super().ShortName()).To(Equal("Base"))
		Expect(c.Super().Super()).To(BeNil())
		Expect(me.IsSubclassOf(c, c.Super())).To(BeTrue())
		Expect(me.IsSubclassOf(c.Super(), c)).To(BeFalse())
	})

	It("caches class descriptors", func() {
		c := Must(in.ForType(utils.TypeOf[Derived]()))
		b := Must(in.ForType(utils.TypeOf[*Base]()))
		Expect(c.Super()).To(BeIdenticalTo(b))
	})

	It("separates declared and promoted methods", func() {
		c := Must(in.ForType(utils.TypeOf[Derived]()))
		Expect(names(c.DeclaredMethods())).To(Equal([]string{"ChoicesPlaceOrder", "GetName", "Title"}))
		Expect(names(c.Methods())).To(Equal([]string{
			"AlwaysHidePlaceOrder",
			"ChoicesPlaceOrder",
			"GetName",
			"GetOrders",
			"MemberAnnotations",
			"PlaceOrder",
			"Title",
			"ValidatePlaceOrder",
		}))
		Expect(c.Method("PlaceOrder").DeclaringClass().ShortName()).To(Equal("Base"))
		Expect(c.Method("ChoicesPlaceOrder").DeclaringClass().ShortName()).To(Equal("Derived"))
		Expect(c.Method("ChoicesPlaceOrder").Key()).NotTo(Equal(c.Super().Method("ChoicesPlaceOrder").Key()))
		Expect(c.Method("Unknown")).To(BeNil())
	})

	It("describes signatures", func() {
		c := Must(in.ForType(utils.TypeOf[Derived]()))
		m := c.Method("PlaceOrder")
		Expect(m.Params()).To(Equal([]me.TypeRef{{Name: "string", Kind: me.KindString}, {Name: "int", Kind: me.KindNumber}}))
		Expect(m.Result().IsVoid()).To(BeTrue())
		Expect(m.Static()).To(BeFalse())

		Expect(c.Method("GetOrders").Result().Kind).To(Equal(me.KindCollection))
		Expect(c.Method("ValidatePlaceOrder").Result()).To(Equal(me.TypeRef{Name: "string", Kind: me.KindString}))
		Expect(c.Method("AlwaysHidePlaceOrder").Static()).To(BeTrue())
		Expect(c.Method("AlwaysHidePlaceOrder").Result().Kind).To(Equal(me.KindBool))
	})

	It("provides annotations of the declaring type", func() {
		c := Must(in.ForType(utils.TypeOf[Derived]()))
		Expect(c.Annotations()).To(BeEmpty())
		Expect(c.Super().Annotations()).To(Equal(applib.Annotations{applib.Named: "Base Object"}))
		Expect(c.Method("GetOrders").Annotations()).To(HaveKeyWithValue(applib.DescribedAs, "all orders"))
	})

	Context("invocation", func() {
		It("invokes static methods without target", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			Expect(c.Method("AlwaysHidePlaceOrder").Invoke(nil)).To(Equal([]any{true}))
		})

		It("rejects instance methods without target", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			_, err := c.Method("GetName").Invoke(nil)
			Expect(err).To(HaveOccurred())
		})

		It("dispatches to the target", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			Expect(c.Method("ChoicesPlaceOrder").Invoke(&Derived{})).To(Equal([]any{[]string{"derived"}}))
			Expect(c.Super().Method("ChoicesPlaceOrder").Invoke(&Base{})).To(Equal([]any{[]string{"base"}}))
		})

		It("converts arguments", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			d := &Derived{}
			Expect(c.Method("PlaceOrder").Invoke(d, "tea", int64(2))).To(BeEmpty())
			Expect(d.orders).To(Equal([]Order{{"tea"}, {"tea"}}))
		})

		It("separates error results", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			Expect(c.Method("ValidatePlaceOrder").Invoke(&Derived{}, "tea", 0)).To(Equal([]any{"nothing to order"}))
			_, err := c.Method("ValidatePlaceOrder").Invoke(&Derived{}, "tea", -1)
			MustFailWithMessage(err, "negative quantity")
		})

		It("recovers panics", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			_, err := c.Method("Title").Invoke(nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("panicked: no title"))
		})

		It("checks the argument count", func() {
			c := Must(in.ForType(utils.TypeOf[Derived]()))
			_, err := c.Method("PlaceOrder").Invoke(&Derived{}, "tea")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("errors", func() {
		It("rejects non struct types", func() {
			_, err := in.ForType(utils.TypeOf[string]())
			MustFailWithMessage(err, "type string is no struct type")
		})

		It("rejects cyclic embedding", func() {
			_, err := in.ForType(utils.TypeOf[Cyclic]())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cyclic embedding"))
		})
	})
})
