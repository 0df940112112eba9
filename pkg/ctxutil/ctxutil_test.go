package ctxutil_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/facets/pkg/ctxutil"
)

var _ = Describe("context utils", func() {
	It("cancels contexts", func() {
		ctx := me.CancelContext(context.Background())
		Expect(ctx.Err()).To(BeNil())
		Expect(me.Cancel(ctx)).To(BeTrue())
		Expect(ctx.Err()).To(Equal(context.Canceled))
		Expect(me.Cancel(context.Background())).To(BeFalse())
	})

	It("times out", func() {
		ctx := me.TimeoutContext(context.Background(), time.Millisecond)
		Eventually(ctx.Done()).Should(BeClosed())
		Expect(ctx.Err()).To(Equal(context.DeadlineExceeded))
		Expect(me.TimeoutContext(context.Background(), 0).Err()).To(BeNil())
	})

	It("keeps typed values", func() {
		key := me.NewValueKey[[]string]("stack")
		ctx := key.WithValue(context.Background(), []string{"a"})
		Expect(key.Get(ctx)).To(Equal([]string{"a"}))
		Expect(key.Get(context.Background())).To(BeNil())
	})
})
