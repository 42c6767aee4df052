package accordion

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/hooking"
	"github.com/sarchlab/pagesim/sim/timing"
)

const faqMarkup = `<html><body>
<section class="faq-section">
  <div class="faq-item" id="a"><button class="faq-question" aria-expanded="false">A?</button><p>a</p></div>
  <div class="faq-item" id="b"><button class="faq-question" aria-expanded="false">B?</button><p>b</p></div>
  <div class="faq-item" id="c"><button class="faq-question" aria-expanded="false">C?</button><p>c</p></div>
</section>
</body></html>`

var _ = Describe("Controller", func() {
	var (
		engine     *timing.SerialEngine
		doc        *page.Document
		dispatcher *page.Dispatcher
		c          *Controller
	)

	BeforeEach(func() {
		engine = timing.NewSerialEngine()
		doc = page.MustParseString(faqMarkup, 1280, 800)
		dispatcher = page.NewDispatcher(engine, doc)

		var err error
		c, err = MakeBuilder().Build("FAQ", doc)
		Expect(err).NotTo(HaveOccurred())
	})

	click := func(t timing.VTimeInSec, id string) {
		dispatcher.Enqueue(page.Input{
			Time: t, Type: page.Click, Target: "#" + id + " .faq-question",
		})
	}

	aria := func(id string) string {
		v, _ := doc.QuerySelector("#" + id + " .faq-question").Attribute("aria-expanded")
		return v
	}

	It("should start with everything closed", func() {
		Expect(c.Items()).To(HaveLen(3))
		Expect(c.Expanded()).To(Equal(-1))
	})

	It("should open the clicked item", func() {
		click(1, "b")
		Expect(engine.Run()).To(Succeed())

		Expect(c.Expanded()).To(Equal(1))
		Expect(doc.QuerySelector("#b").HasClass(ActiveClass)).To(BeTrue())
		Expect(aria("b")).To(Equal("true"))
	})

	It("should move the open item on a click elsewhere", func() {
		click(1, "a")
		click(2, "b")
		Expect(engine.Run()).To(Succeed())

		Expect(c.IsExpanded(0)).To(BeFalse())
		Expect(c.IsExpanded(1)).To(BeTrue())
		Expect(c.IsExpanded(2)).To(BeFalse())
		Expect(aria("a")).To(Equal("false"))
		Expect(aria("b")).To(Equal("true"))
		Expect(aria("c")).To(Equal("false"))
	})

	It("should close the open item when it is clicked again", func() {
		click(1, "c")
		click(2, "c")
		Expect(engine.Run()).To(Succeed())

		Expect(c.Expanded()).To(Equal(-1))
		Expect(aria("c")).To(Equal("false"))
	})

	It("should keep at most one item open for any click sequence", func() {
		r := rand.New(rand.NewSource(42))

		for n := 0; n < 500; n++ {
			c.Toggle(timing.VTimeInSec(n), r.Intn(3))

			open := 0
			for i := range c.Items() {
				if c.IsExpanded(i) {
					open++
				}
			}

			Expect(open).To(BeNumerically("<=", 1))
		}
	})

	It("should fix items that the markup opened together", func() {
		doc.QuerySelector("#a").AddClass(ActiveClass)
		doc.QuerySelector("#c").AddClass(ActiveClass)

		c.Toggle(0, 1)

		Expect(c.Expanded()).To(Equal(1))
		Expect(c.IsExpanded(0)).To(BeFalse())
		Expect(c.IsExpanded(2)).To(BeFalse())
	})

	It("should report open and close", func() {
		var got []string
		c.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
			tr := ctx.Item.(interact.Transition)
			got = append(got, tr.Kind+" "+tr.Detail)
		}))

		c.Toggle(0, 0)
		c.Toggle(1, 0)

		Expect(got).To(Equal([]string{"open #a", "close #a"}))
	})
})

var _ = Describe("Builder", func() {
	It("should disable the accordion without items", func() {
		doc := page.MustParseString(`<html><body></body></html>`, 1280, 800)

		c, err := MakeBuilder().Build("FAQ", doc)

		Expect(c).To(BeNil())
		Expect(errors.Is(err, interact.ErrMissingTarget)).To(BeTrue())
	})

	It("should disable the accordion when an item has no question", func() {
		doc := page.MustParseString(`<html><body>
<div class="faq-item"><button class="faq-question"></button></div>
<div class="faq-item"><p>no question</p></div>
</body></html>`, 1280, 800)

		_, err := MakeBuilder().Build("FAQ", doc)

		Expect(errors.Is(err, interact.ErrMissingTarget)).To(BeTrue())
		Expect(doc.QuerySelector(".faq-question").ListenerCount(page.Click)).To(Equal(0))
	})
})
