package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/page/scroll"
)

var _ = Describe("Page", func() {
	It("should keep defaults for missing settings", func() {
		p, err := ParsePage([]byte(`
markup: landing.html
viewport:
  width: 375
carousel:
  gap: 16
`))
		Expect(err).NotTo(HaveOccurred())

		Expect(p.Viewport.Width).To(Equal(375.0))
		Expect(p.Viewport.Height).To(Equal(900.0))
		Expect(p.Carousel.Gap).To(Equal(16.0))
		Expect(p.Carousel.AutoAdvanceInterval).To(Equal(5.0))
		Expect(p.Cursor.Smoothing).To(Equal(0.15))
		Expect(p.RevealGroups()).To(Equal(scroll.DefaultRevealGroups))
	})

	It("should reject bad settings", func() {
		_, err := ParsePage([]byte("cursor:\n  smoothing: 1.5\n"))
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		_, err = ParsePage([]byte("viewport:\n  width: -1\n"))
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		for _, doc := range []string{
			"cursor:\n  smoothing: .nan\n",
			"viewport:\n  width: .nan\n",
			"counter:\n  duration: .nan\n",
			"scroll:\n  duration: .nan\n",
			"contact_form:\n  sent_delay: .nan\n",
		} {
			_, err = ParsePage([]byte(doc))
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue(), doc)
		}

		_, err = ParsePage([]byte("viewport: [1, 2]\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should read reveal overrides and disabled components", func() {
		p, err := ParsePage([]byte(`
disabled: [Cursor, Navbar]
scroll:
  reveal:
    - trigger: .hero
      targets: .hero-title
      start: 0.9
      reverse: true
`))
		Expect(err).NotTo(HaveOccurred())

		Expect(p.IsDisabled("Cursor")).To(BeTrue())
		Expect(p.IsDisabled("FAQ")).To(BeFalse())
		Expect(p.RevealGroups()).To(Equal([]scroll.RevealGroup{
			{Trigger: ".hero", Targets: ".hero-title", Start: 0.9, Reverse: true},
		}))
	})

	It("should resolve the markup next to the page file", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "page.yaml")
		Expect(os.WriteFile(path, []byte("markup: landing.html\n"), 0o600)).To(Succeed())

		p, err := LoadPage(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.MarkupPath()).To(Equal(filepath.Join(dir, "landing.html")))
	})

	It("should fail on a missing file", func() {
		_, err := LoadPage(filepath.Join(GinkgoT().TempDir(), "nope.yaml"))

		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})

var _ = Describe("Script", func() {
	It("should convert steps into inputs", func() {
		s, err := ParseScript([]byte(`
steps:
  - {at: 0.5, type: mousemove, x: 10, y: 20}
  - {at: 1, type: click, target: .testimonial-btn.next}
  - {at: 3, type: resize, width: 375, height: 800}
  - {at: 2, type: scroll, y: 1200}
`))
		Expect(err).NotTo(HaveOccurred())

		inputs := s.Inputs()
		Expect(inputs).To(HaveLen(4))
		Expect(inputs[0]).To(Equal(page.Input{Time: 0.5, Type: page.PointerMove, X: 10, Y: 20}))
		Expect(inputs[1].Target).To(Equal(".testimonial-btn.next"))
		Expect(inputs[2].Width).To(Equal(375.0))
		Expect(s.End()).To(Equal(3.0))
	})

	It("should reject unknown types", func() {
		_, err := ParseScript([]byte("steps:\n  - {at: 1, type: dblclick, target: a}\n"))

		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})

	It("should reject clicks without a target", func() {
		_, err := ParseScript([]byte("steps:\n  - {at: 1, type: click}\n"))

		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})

	It("should reject negative times", func() {
		_, err := ParseScript([]byte("steps:\n  - {at: -1, type: scroll, y: 10}\n"))

		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})
})

var _ = Describe("Env", func() {
	setenv := func(key, value string) {
		old, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())

		DeferCleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	unset := func(keys ...string) {
		for _, k := range keys {
			setenv(k, "")
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	}

	BeforeEach(func() {
		unset(EnvViewportWidth, EnvDuration, EnvTraceDB, EnvMonitorPort,
			EnvClickHouseDSN, EnvMySQLDSN, EnvMongoDBURI)
	})

	It("should read overrides from a dotenv file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "test.env")
		Expect(os.WriteFile(path, []byte(
			"PAGESIM_VIEWPORT_WIDTH=600\nPAGESIM_DURATION=12s\n"+
				"PAGESIM_TRACE_DB=run1\nPAGESIM_MONITOR_PORT=32776\n"+
				"PAGESIM_CLICKHOUSE_DSN=clickhouse://localhost:9000/pagesim\n"+
				"PAGESIM_MONGODB_URI=mongodb://localhost:27017\n"), 0o600)).
			To(Succeed())

		env, err := LoadEnv(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(env).To(Equal(Env{
			ViewportWidth: 600,
			Duration:      12 * time.Second,
			TraceDB:       "run1",
			MonitorPort:   32776,
			ClickHouseDSN: "clickhouse://localhost:9000/pagesim",
			MongoDBURI:    "mongodb://localhost:27017",
		}))
	})

	It("should prefer the process environment over the file", func() {
		setenv(EnvViewportWidth, "1024")
		path := filepath.Join(GinkgoT().TempDir(), "test.env")
		Expect(os.WriteFile(path, []byte("PAGESIM_VIEWPORT_WIDTH=600\n"), 0o600)).To(Succeed())

		env, err := LoadEnv(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(env.ViewportWidth).To(Equal(1024.0))
	})

	It("should reject malformed values", func() {
		setenv(EnvDuration, "soon")

		_, err := ReadEnv()

		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})

	It("should apply the viewport width to a page", func() {
		p := DefaultPage()

		Env{ViewportWidth: 700}.Apply(p)

		Expect(p.Viewport.Width).To(Equal(700.0))
		Expect(p.Viewport.Height).To(Equal(900.0))
	})
})
