package session_test

import (
	"bytes"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/config"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/session"
	"github.com/sarchlab/pagesim/tracing"
)

func landing() []byte {
	data, err := os.ReadFile("../examples/landing/page.html")
	Expect(err).NotTo(HaveOccurred())

	return data
}

var _ = Describe("Session", func() {
	var (
		settings *config.Page
		s        *session.Session
		counts   *tracing.CountTracer
	)

	build := func(markup []byte) {
		var err error
		s, err = session.MakeBuilder().
			WithPage(settings).
			Build(bytes.NewReader(markup))
		Expect(err).NotTo(HaveOccurred())

		counts = tracing.NewCountTracer(nil)
		for _, c := range s.Components() {
			tracing.CollectTransitions(c, counts)
		}
	}

	BeforeEach(func() {
		settings = config.DefaultPage()
	})

	Context("on the full landing page", func() {
		BeforeEach(func() {
			build(landing())
		})

		It("should build every component", func() {
			Expect(s.Components()).To(HaveLen(8))
			Expect(s.Disabled()).To(BeEmpty())
			Expect(s.Reveals()).To(Equal(9))
			Expect(s.Carousel.Timer().Running()).To(BeTrue())
		})

		It("should render frames while idle", func() {
			Expect(s.Run(1)).To(Succeed())

			Expect(s.Frames.Frames()).To(BeEquivalentTo(61))
			Expect(s.Cursor.Animator.Frames()).To(BeEquivalentTo(61))
		})

		It("should ease the cursor toward the pointer", func() {
			s.Play([]page.Input{
				{Time: 0.5, Type: page.PointerMove, X: 100, Y: 200},
			})
			Expect(s.Run(3)).To(Succeed())

			snap := s.Snapshot()
			Expect(snap.Cursor.PointerX).To(Equal(100.0))
			Expect(snap.Cursor.RenderedX).To(BeNumerically("~", 100, 1e-3))
			Expect(snap.Cursor.RenderedY).To(BeNumerically("~", 200, 1e-3))
		})

		It("should flag the cursor over interactive elements", func() {
			s.Play([]page.Input{
				{Time: 0.5, Type: page.PointerEnter, Target: ".btn-primary"},
			})
			Expect(s.Run(1)).To(Succeed())

			Expect(s.Snapshot().Cursor.Hovering).To(BeTrue())
		})

		It("should scroll smoothly and fire the scroll effects", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Scroll, Y: 5000},
			})

			Expect(s.Run(1.5)).To(Succeed())
			y := s.Document.Window().ScrollY()
			Expect(y).To(BeNumerically(">", 0))
			Expect(y).To(BeNumerically("<", 5000))

			Expect(s.Run(6)).To(Succeed())

			snap := s.Snapshot()
			Expect(snap.ScrollY).To(Equal(5000.0))
			Expect(snap.Navbar.Scrolled).To(BeTrue())
			Expect(snap.Revealed).To(BeNumerically(">", 0))
			Expect(snap.Counters).To(HaveLen(3))

			texts := []string{}
			for _, c := range snap.Counters {
				Expect(c.Done).To(BeTrue())
				texts = append(texts, c.Text)
			}
			Expect(texts).To(Equal([]string{"250", "1,234", "99"}))

			Expect(counts.Count(session.CounterName, "start")).To(Equal(3))
			Expect(counts.Count(session.CounterName, "done")).To(Equal(3))
			Expect(counts.Count(session.NavbarName, "scrolled")).To(Equal(1))
		})

		It("should jump when inertial scrolling is off", func() {
			settings.Scroll.Inertial = false
			build(landing())

			s.Play([]page.Input{
				{Time: 1, Type: page.Scroll, Y: 2000},
			})
			Expect(s.Run(1)).To(Succeed())

			Expect(s.Inertial).To(BeNil())
			Expect(s.Document.Window().ScrollY()).To(Equal(2000.0))
		})

		It("should auto-advance the carousel on a wide viewport", func() {
			Expect(s.Run(11)).To(Succeed())

			Expect(s.Snapshot().Carousel.Index).To(Equal(2))
			Expect(counts.Count(session.CarouselName, "auto")).To(Equal(2))
		})

		It("should hold the carousel on a narrow viewport", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Resize, Width: 600, Height: 900},
			})
			Expect(s.Run(11)).To(Succeed())

			snap := s.Snapshot()
			Expect(snap.Width).To(Equal(600.0))
			Expect(snap.Carousel.Index).To(Equal(0))
			Expect(snap.Carousel.Suppressed).To(Equal(2))
		})

		It("should keep one FAQ item open", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Click, Target: ".faq-item:nth-child(1) .faq-question"},
				{Time: 2, Type: page.Click, Target: ".faq-item:nth-child(2) .faq-question"},
			})
			Expect(s.Run(2)).To(Succeed())

			Expect(s.Snapshot().Accordion.Expanded).To(Equal(1))
		})

		It("should toggle the mobile menu", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Click, Target: ".mobile-menu-toggle"},
			})
			Expect(s.Run(1)).To(Succeed())

			Expect(s.Snapshot().MobileMenu.Open).To(BeTrue())
		})

		It("should run the contact form feedback", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Submit, Target: ".contact-form"},
				{Time: 2, Type: page.Submit, Target: ".contact-form"},
			})

			Expect(s.Run(3)).To(Succeed())
			snap := s.Snapshot()
			Expect(snap.ContactForm.Phase).To(Equal("sent"))
			Expect(snap.ContactForm.Submitted).To(Equal(1))
			Expect(snap.ContactForm.Ignored).To(Equal(1))

			Expect(s.Run(6)).To(Succeed())
			Expect(s.Snapshot().ContactForm.Phase).To(Equal("idle"))
		})

		It("should count inputs that miss the page", func() {
			s.Play([]page.Input{
				{Time: 1, Type: page.Click, Target: ".nowhere"},
			})
			Expect(s.Run(1)).To(Succeed())

			Expect(s.Snapshot().Dropped).To(Equal(1))
		})

		It("should write the snapshot as YAML", func() {
			Expect(s.Run(1)).To(Succeed())

			buf := new(bytes.Buffer)
			Expect(s.Snapshot().WriteYAML(buf)).To(Succeed())

			Expect(buf.String()).To(ContainSubstring("carousel:"))
			Expect(buf.String()).To(ContainSubstring("expanded: -1"))
		})
	})

	It("should fail submissions when configured to", func() {
		settings.ContactForm.Fail = true
		build(landing())

		s.Play([]page.Input{
			{Time: 1, Type: page.Submit, Target: ".contact-form"},
		})
		Expect(s.Run(3)).To(Succeed())

		snap := s.Snapshot()
		Expect(snap.ContactForm.Phase).To(Equal("failed"))
		Expect(snap.ContactForm.Failed).To(Equal(1))
	})

	It("should skip disabled components", func() {
		settings.Disabled = []string{session.CursorName, session.CarouselName}
		build(landing())

		Expect(s.Cursor).To(BeNil())
		Expect(s.Carousel).To(BeNil())
		Expect(s.Disabled()).To(Equal([]string{
			session.CursorName, session.CarouselName,
		}))
		Expect(s.Components()).To(HaveLen(5))
	})

	It("should leave out components whose elements are missing", func() {
		markup := strings.Replace(string(landing()),
			`<div class="testimonial-track">`, `<div class="track">`, 1)
		build([]byte(markup))

		Expect(s.Carousel).To(BeNil())
		Expect(s.Disabled()).To(Equal([]string{session.CarouselName}))
		Expect(s.Accordion).NotTo(BeNil())

		Expect(s.Run(6)).To(Succeed())
		Expect(s.Snapshot().Carousel).To(BeNil())
	})
})
