package app_test

import (
	"bytes"

	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/facets/cmds/mmctl/app"
	. "github.com/mandelsoft/facets/pkg/testutils"
)

const customers = `
classes:
- name: Party
  methods:
  - name: getName
    result: string
- name: Customer
  super: Party
  annotations:
    Named: Client
  methods:
  - name: placeOrder
    params: [ string, int ]
  - name: validatePlaceOrder
    params: [ string, int ]
    result: string
  - name: alwaysHidePlaceOrder
    result: bool
    static: true
    value: true
`

const broken = `
classes:
- name: Broken
  methods:
  - name: placeOrder
    params: [ int ]
  - name: defaultPlaceOrder
    result: "[]any"
  - name: default0PlaceOrder
    result: int
`

var _ = Describe("mmctl", func() {
	var fs vfs.FileSystem
	var cmd *cobra.Command
	var buf *bytes.Buffer

	BeforeEach(func() {
		fs = Must(TestFileSystem(map[string]string{
			"classes/customers.yaml": customers,
			"classes/broken.yaml":    broken,
			"config.yaml":            "exclude:\n- ActionValidation\n",
		}))
		buf = bytes.NewBuffer(nil)
		cmd = app.New(fs)
		cmd.SetOut(buf)
		cmd.SetErr(bytes.NewBuffer(nil))
	})

	Context("factories", func() {
		It("lists the built-in factories", func() {
			cmd.SetArgs([]string{"factories"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(HavePrefix(" 1 ObjectNamed"))
			Expect(buf.String()).To(ContainSubstring("ActionValidation"))
		})

		It("applies the config", func() {
			cmd.SetArgs([]string{"-c", "config.yaml", "factories"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).NotTo(ContainSubstring("ActionValidation"))
		})
	})

	Context("dump", func() {
		It("dumps specifications", func() {
			cmd.SetArgs([]string{"dump", "classes/customers.yaml"})
			MustBeSuccessful(cmd.Execute())
			out := buf.String()
			Expect(out).To(HavePrefix("class Party (Built)\n"))
			Expect(out).To(ContainSubstring("class Customer (Built)\n  super: Party\n"))
			Expect(out).To(ContainSubstring("Named: Client [ObjectNamed]"))
			Expect(out).To(ContainSubstring("ActionValidation: Customer#validatePlaceOrder [ActionValidation]"))
		})

		It("selects classes", func() {
			cmd.SetArgs([]string{"dump", "classes/customers.yaml", "-C", "Customer", "-o", "yaml"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(HavePrefix("items:\n- digest: "))
			Expect(buf.String()).To(ContainSubstring("  id: Customer\n"))
			Expect(buf.String()).NotTo(ContainSubstring("id: Party\n"))
		})

		It("provides json output", func() {
			cmd.SetArgs([]string{"dump", "classes/customers.yaml", "-o", "json", "-t", "10s"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(HavePrefix(`{"items":[{"id":"Party","digest":"`))
		})

		It("respects the programming model config", func() {
			cmd.SetArgs([]string{"-c", "config.yaml", "dump", "classes/customers.yaml"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).NotTo(ContainSubstring("ActionValidation:"))
			Expect(buf.String()).To(ContainSubstring("  unclassified: validatePlaceOrder\n"))
		})

		It("reports failed classes", func() {
			cmd.SetArgs([]string{"dump", "classes/customers.yaml", "classes/broken.yaml"})
			err := cmd.Execute()
			MustFailWithMessage(err, "1 class(es) failed: Broken")
			Expect(buf.String()).To(ContainSubstring("class Broken (Failed): class Broken: "))
		})

		It("rejects unknown classes", func() {
			cmd.SetArgs([]string{"dump", "classes/customers.yaml", "-C", "Vendor"})
			MustFailWithMessage(cmd.Execute(), `unknown class "Vendor"`)
		})
	})
})
