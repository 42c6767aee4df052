package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/sim/timing"
)

type toggler struct {
	*interact.ComponentBase
}

func (t *toggler) flip(now timing.VTimeInSec, kind string) {
	t.NotifyTransition(now, kind, "")
}

var _ = Describe("CountTracer", func() {
	var (
		a, b   *toggler
		tracer *CountTracer
	)

	BeforeEach(func() {
		a = &toggler{interact.NewComponentBase("A")}
		b = &toggler{interact.NewComponentBase("B")}
		tracer = NewCountTracer(nil)

		CollectTransitions(a, tracer)
		CollectTransitions(b, tracer)
	})

	It("should count by component and kind", func() {
		a.flip(0, "open")
		a.flip(1, "open")
		a.flip(2, "close")
		b.flip(3, "open")

		Expect(tracer.Count("A", "open")).To(Equal(2))
		Expect(tracer.Count("A", "close")).To(Equal(1))
		Expect(tracer.Count("B", "open")).To(Equal(1))
		Expect(tracer.Total()).To(Equal(4))
		Expect(tracer.Keys()).To(Equal([]CountKey{
			{"A", "close"}, {"A", "open"}, {"B", "open"},
		}))
	})

	It("should refuse to be attached twice", func() {
		Expect(func() { CollectTransitions(a, tracer) }).To(Panic())
	})

	It("should apply the filter", func() {
		c := &toggler{interact.NewComponentBase("C")}
		only := NewCountTracer(ComponentFilter("C"))
		CollectTransitions(a, only)
		CollectTransitions(c, only)

		a.flip(0, "open")
		c.flip(0, "open")

		Expect(only.Total()).To(Equal(1))
		Expect(only.Count("C", "open")).To(Equal(1))
	})
})

var _ = Describe("EventCounter", func() {
	It("should count the events the engine handles", func() {
		engine := timing.NewSerialEngine()
		counter := NewEventCounter()
		engine.AcceptHook(counter)

		frames := timing.NewFrameScheduler(engine, timing.DisplayRefreshRate)
		frames.Start()

		fired := 0
		timer := timing.NewIntervalTimer(engine, 0.5, func(timing.VTimeInSec) { fired++ })
		timer.Start()

		Expect(engine.RunUntil(1)).To(Succeed())

		Expect(counter.Count("timing.FrameEvent")).To(Equal(61))
		Expect(counter.Count("timing.TimerEvent")).To(Equal(2))
		Expect(fired).To(Equal(2))
		Expect(counter.Entries()).To(HaveLen(2))
		Expect(counter.Entries()[0].EventType).To(Equal("timing.FrameEvent"))
		Expect(counter.Entries()[0].Handler).To(Equal("timing.FrameScheduler"))
	})
})
