package interact

import (
	"bytes"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/sim/hooking"
)

var _ = Describe("ComponentBase", func() {
	It("should deliver transitions to hooks", func() {
		c := NewComponentBase("Carousel")

		var got []Transition
		c.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
			Expect(ctx.Pos).To(BeIdenticalTo(HookPosTransition))
			got = append(got, ctx.Item.(Transition))
		}))

		c.NotifyTransition(1.5, "next", "0->1")

		Expect(got).To(Equal([]Transition{
			{Time: 1.5, Component: "Carousel", Kind: "next", Detail: "0->1"},
		}))
	})

	It("should log transitions when a logger is set", func() {
		buf := &bytes.Buffer{}
		c := NewComponentBase("Accordion")
		c.SetLogger(log.New(buf, "", 0))

		c.NotifyTransition(2, "open", "#q1")

		Expect(buf.String()).To(Equal("2.0000, Accordion, open, #q1\n"))
	})

	It("should reject empty names", func() {
		Expect(func() { NewComponentBase("") }).To(Panic())
	})

	It("should wrap missing targets", func() {
		err := MissingTarget("Cursor", ".custom-cursor")

		Expect(errors.Is(err, ErrMissingTarget)).To(BeTrue())
		Expect(err.Error()).To(Equal("Cursor: required element missing: .custom-cursor"))
	})
})
