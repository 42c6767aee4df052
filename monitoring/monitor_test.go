package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/sim/timing"
	"github.com/sarchlab/pagesim/tracing"
)

type sampleComponent struct {
	*interact.ComponentBase

	Index int
	Count int
}

var _ = Describe("Monitor", func() {
	var (
		engine *timing.SerialEngine
		m      *Monitor
		router http.Handler
	)

	BeforeEach(func() {
		engine = timing.NewSerialEngine()
		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterComponent(&sampleComponent{
			ComponentBase: interact.NewComponentBase("Testimonials"),
			Index:         2,
			Count:         5,
		})
		m.RegisterComponent(&sampleComponent{
			ComponentBase: interact.NewComponentBase("FAQ"),
		})

		router = m.Router()
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	It("should list components", func() {
		rec := get("/api/list_components")

		var names []string
		Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Testimonials", "FAQ"}))
	})

	It("should report the current time", func() {
		timing.AfterFunc(engine, 2.5, func(timing.VTimeInSec) {})
		Expect(engine.Run()).To(Succeed())

		rec := get("/api/now")

		var rsp struct{ Now float64 }
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Now).To(Equal(2.5))
	})

	It("should serialize a component", func() {
		rec := get("/api/component/Testimonials")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should answer 404 for unknown components", func() {
		Expect(get("/api/component/Nope").Code).To(Equal(http.StatusNotFound))
	})

	It("should reject malformed field requests", func() {
		Expect(get("/api/field/notjson").Code).To(Equal(http.StatusBadRequest))
	})

	It("should pause and continue the engine", func() {
		Expect(get("/api/pause").Code).To(Equal(http.StatusOK))
		Expect(get("/api/continue").Code).To(Equal(http.StatusOK))

		timing.AfterFunc(engine, 1, func(timing.VTimeInSec) {})
		Expect(engine.Run()).To(Succeed())
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("Session", 1000)
		bar.SetFinished(250)
		bar.SetFinished(2000)
		done := m.CreateProgressBar("Done", 1)
		m.CompleteProgressBar(done)

		var bars []ProgressBarStatus
		Expect(json.Unmarshal(get("/api/progress").Body.Bytes(), &bars)).To(Succeed())

		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("Session"))
		Expect(bars[0].Finished).To(Equal(uint64(1000)))
	})

	It("should list event counts", func() {
		counter := tracing.NewEventCounter()
		engine.AcceptHook(counter)
		m.RegisterEventCounter(counter)

		timing.AfterFunc(engine, 1, func(timing.VTimeInSec) {})
		Expect(engine.Run()).To(Succeed())

		var entries []tracing.EventCountEntry
		Expect(json.Unmarshal(get("/api/events").Body.Bytes(), &entries)).To(Succeed())

		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Count).To(Equal(1))
	})

	It("should report resource usage", func() {
		rec := get("/api/resource")

		var rsp resourceRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.MemorySize).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Monitor port", func() {
	It("should refuse privileged ports", func() {
		m := NewMonitor().WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})
})
