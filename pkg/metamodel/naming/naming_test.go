package naming_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/facets/pkg/metamodel/naming"
)

var _ = Describe("naming", func() {
	It("matches prefixes", func() {
		Expect(me.HasPrefix("validatePlaceOrder", me.Validate)).To(BeTrue())
		Expect(me.HasPrefix("ValidatePlaceOrder", me.Validate)).To(BeTrue())
		Expect(me.HasPrefix("validate", me.Validate)).To(BeFalse())
		Expect(me.HasPrefix("validated", me.Validate)).To(BeFalse())
		Expect(me.HasPrefix("namespace", me.Name)).To(BeFalse())
		Expect(me.HasPrefix("default0PlaceOrder", me.Default)).To(BeTrue())
		Expect(me.HasPrefix("addToItems", me.AddTo)).To(BeTrue())
		Expect(me.HasPrefix("AddtoItems", me.AddTo)).To(BeFalse())
	})

	It("finds support methods", func() {
		Expect(me.IsSupportMethod("hidePlaceOrder")).To(BeTrue())
		Expect(me.IsSupportMethod("AlwaysHidePlaceOrder")).To(BeTrue())
		Expect(me.IsSupportMethod("placeOrder")).To(BeFalse())
		Expect(me.IsSupportMethod("debugPlaceOrder")).To(BeFalse())
		Expect(me.IsSupportMethod("getName")).To(BeFalse())
	})

	It("composes support names", func() {
		Expect(me.SupportName(me.Validate, "placeOrder")).To(Equal("validatePlaceOrder"))
		Expect(me.SupportName(me.Validate, "PlaceOrder")).To(Equal("ValidatePlaceOrder"))
		Expect(me.SupportName(me.Choices, "placeOrder", 1)).To(Equal("choices1PlaceOrder"))
		Expect(me.SupportName(me.AlwaysHide, "Name")).To(Equal("AlwaysHideName"))
		Expect(me.MemberName("getFirstName", "FirstName")).To(Equal("firstName"))
		Expect(me.MemberName("GetFirstName", "FirstName")).To(Equal("FirstName"))
	})

	It("splits numbered tails", func() {
		n, tail, ok := me.NumberedTail("default12PlaceOrder", me.Default)
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(12))
		Expect(tail).To(Equal("PlaceOrder"))

		_, _, ok = me.NumberedTail("defaultPlaceOrder", me.Default)
		Expect(ok).To(BeFalse())
		_, _, ok = me.NumberedTail("default1", me.Default)
		Expect(ok).To(BeFalse())
	})

	It("strips the leading marker only", func() {
		m, tail := me.StripMarker("debugExplorationAction")
		Expect(m).To(Equal(me.Debug))
		Expect(tail).To(Equal("ExplorationAction"))
		m, tail = me.StripMarker("ExplorationDebugAction")
		Expect(m).To(Equal(me.Exploration))
		Expect(tail).To(Equal("DebugAction"))
		m, tail = me.StripMarker("debugger")
		Expect(m).To(Equal(""))
		Expect(tail).To(Equal("debugger"))
	})

	It("humanizes names", func() {
		Expect(me.Humanize("AnActionWithDebugPrefix")).To(Equal("An Action With Debug Prefix"))
		Expect(me.Humanize("placeOrder")).To(Equal("Place Order"))
		Expect(me.Humanize("URLValue")).To(Equal("URL Value"))
		Expect(me.Humanize("address2")).To(Equal("Address 2"))
		Expect(me.Humanize("first_name")).To(Equal("First name"))
	})

	It("pluralizes names", func() {
		Expect(me.Pluralize("Customer")).To(Equal("Customers"))
		Expect(me.Pluralize("Category")).To(Equal("Categories"))
		Expect(me.Pluralize("Day")).To(Equal("Days"))
		Expect(me.Pluralize("Box")).To(Equal("Boxes"))
		Expect(me.Pluralize("Address")).To(Equal("Addresses"))
	})
})
