package contactform

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

const formMarkup = `<html><body>
<section class="contact-section">
  <form class="contact-form">
    <input type="text" name="name" value="">
    <input type="email" name="email" value="">
    <textarea name="message"></textarea>
    <button type="submit" class="cta-button">Send Message</button>
  </form>
</section>
</body></html>`

var _ = Describe("Form", func() {
	var (
		mockCtrl   *gomock.Controller
		submitter  *MockSubmitter
		engine     *timing.SerialEngine
		doc        *page.Document
		dispatcher *page.Dispatcher
		form       *Form
		button     *page.Element
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		submitter = NewMockSubmitter(mockCtrl)
		engine = timing.NewSerialEngine()
		doc = page.MustParseString(formMarkup, 1280, 800)
		dispatcher = page.NewDispatcher(engine, doc)

		var err error
		form, err = MakeBuilder().
			WithEngine(engine).
			WithSubmitter(submitter).
			Build("ContactForm", doc)
		Expect(err).NotTo(HaveOccurred())

		button = doc.QuerySelector(`.contact-form button[type="submit"]`)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	fill := func() {
		doc.QuerySelector(`input[name="name"]`).SetValue("Ada")
		doc.QuerySelector(`input[name="email"]`).SetValue("ada@example.com")
		doc.QuerySelector(`textarea[name="message"]`).SetValue("Hello")
	}

	submit := func(t timing.VTimeInSec) {
		dispatcher.Enqueue(page.Input{Time: t, Type: page.Submit, Target: ".contact-form"})
	}

	It("should send the fields and show the sending state", func() {
		fill()
		submitter.EXPECT().Submit(map[string]string{
			"name":    "Ada",
			"email":   "ada@example.com",
			"message": "Hello",
		}).Return(nil)

		submit(1)
		Expect(engine.RunUntil(1)).To(Succeed())

		Expect(button.Text()).To(Equal(SendingText))
		Expect(button.Disabled()).To(BeTrue())
		Expect(form.Phase()).To(Equal(Sending))
	})

	It("should show success after 1.5s and restore 3s later", func() {
		fill()
		submitter.EXPECT().Submit(gomock.Any()).Return(nil)

		submit(1)

		Expect(engine.RunUntil(2.4)).To(Succeed())
		Expect(button.Text()).To(Equal(SendingText))

		Expect(engine.RunUntil(2.5)).To(Succeed())
		Expect(button.Text()).To(Equal(SentText))
		Expect(button.Style("background")).To(Equal(SentBackground))
		Expect(button.Disabled()).To(BeTrue())
		Expect(form.Fields()).To(Equal(map[string]string{
			"name": "", "email": "", "message": "",
		}))

		Expect(engine.RunUntil(5.4)).To(Succeed())
		Expect(button.Text()).To(Equal(SentText))

		Expect(engine.RunUntil(5.5)).To(Succeed())
		Expect(button.Text()).To(Equal("Send Message"))
		Expect(button.Style("background")).To(Equal(""))
		Expect(button.Disabled()).To(BeFalse())
		Expect(form.Phase()).To(Equal(Idle))
	})

	It("should show a failure and keep the fields", func() {
		fill()
		submitter.EXPECT().Submit(gomock.Any()).Return(errors.New("offline"))

		submit(0)
		Expect(engine.RunUntil(1.5)).To(Succeed())

		Expect(button.Text()).To(Equal(FailedText))
		Expect(button.Style("background")).To(Equal(""))
		Expect(form.Fields()["name"]).To(Equal("Ada"))
		Expect(form.Failed()).To(Equal(1))

		Expect(engine.RunUntil(4.5)).To(Succeed())
		Expect(button.Text()).To(Equal("Send Message"))
		Expect(button.Disabled()).To(BeFalse())
	})

	It("should ignore submissions while the sequence runs", func() {
		submitter.EXPECT().Submit(gomock.Any()).Return(nil).Times(2)

		submit(0)
		submit(1)
		submit(4)
		submit(5)
		Expect(engine.RunUntil(10)).To(Succeed())

		Expect(form.Submitted()).To(Equal(2))
		Expect(form.Ignored()).To(Equal(2))
	})

	It("should stop the browser from submitting the form", func() {
		var prevented bool
		doc.QuerySelector(".contact-form").AddEventListener(page.Submit,
			func(e *page.DOMEvent) { prevented = e.DefaultPrevented() })
		submitter.EXPECT().Submit(gomock.Any()).Return(nil)

		submit(0)
		Expect(engine.RunUntil(0)).To(Succeed())

		Expect(prevented).To(BeTrue())
	})
})

var _ = Describe("Builder", func() {
	It("should use a stub that accepts everything by default", func() {
		engine := timing.NewSerialEngine()
		doc := page.MustParseString(formMarkup, 1280, 800)

		form, err := MakeBuilder().WithEngine(engine).Build("ContactForm", doc)
		Expect(err).NotTo(HaveOccurred())

		form.Submit(0)
		Expect(engine.RunUntil(2)).To(Succeed())

		Expect(form.Phase()).To(Equal(Sent))
		Expect(form.submitter.(*StubSubmitter).Received).To(HaveLen(1))
	})

	It("should be disabled without a submit button", func() {
		doc := page.MustParseString(`<html><body><form class="contact-form"></form></body></html>`, 1280, 800)

		f, err := MakeBuilder().WithEngine(timing.NewSerialEngine()).Build("ContactForm", doc)

		Expect(f).To(BeNil())
		Expect(errors.Is(err, interact.ErrMissingTarget)).To(BeTrue())
	})
})
