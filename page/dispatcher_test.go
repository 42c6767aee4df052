package page

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/sim/timing"
)

type recordingScroller struct {
	targets []float64
}

func (s *recordingScroller) ScrollTo(y float64) {
	s.targets = append(s.targets, y)
}

var _ = Describe("Dispatcher", func() {
	var (
		engine     *timing.SerialEngine
		doc        *Document
		dispatcher *Dispatcher
	)

	BeforeEach(func() {
		engine = timing.NewSerialEngine()
		doc = MustParseString(sampleMarkup, 1280, 800)
		dispatcher = NewDispatcher(engine, doc)
	})

	It("should deliver inputs in time order, one at a time", func() {
		var log []string

		doc.AddEventListener(PointerMove, func(e *DOMEvent) {
			log = append(log, "move")
			Expect(e.ClientX).To(Equal(10.0))
			Expect(e.Time).To(Equal(0.5))
		})
		doc.QuerySelector("#q1 .faq-question").AddEventListener(Click, func(e *DOMEvent) {
			log = append(log, "click "+e.Target.Text())
		})

		dispatcher.Enqueue(Input{Time: 1, Type: Click, Target: "#q1 .faq-question"})
		dispatcher.Enqueue(Input{Time: 0.5, Type: PointerMove, X: 10, Y: 20})

		Expect(engine.Run()).To(Succeed())
		Expect(log).To(Equal([]string{"move", "click One?"}))
		Expect(dispatcher.Delivered()).To(Equal(2))
	})

	It("should drop inputs whose target is missing", func() {
		dispatcher.Enqueue(Input{Time: 1, Type: Click, Target: ".nope"})

		Expect(engine.Run()).To(Succeed())
		Expect(dispatcher.Dropped()).To(Equal(1))
		Expect(dispatcher.Delivered()).To(Equal(0))
	})

	It("should send viewport enter and leave to the document", func() {
		var got []EventType
		doc.AddEventListener(PointerLeave, func(e *DOMEvent) { got = append(got, e.Type) })
		doc.AddEventListener(PointerEnter, func(e *DOMEvent) { got = append(got, e.Type) })

		dispatcher.Enqueue(Input{Time: 1, Type: PointerLeave})
		dispatcher.Enqueue(Input{Time: 2, Type: PointerEnter})

		Expect(engine.Run()).To(Succeed())
		Expect(got).To(Equal([]EventType{PointerLeave, PointerEnter}))
	})

	It("should route scroll inputs through the scroller when set", func() {
		scroller := &recordingScroller{}
		dispatcher.SetScroller(scroller)

		dispatcher.Enqueue(Input{Time: 1, Type: Scroll, Y: 900})

		Expect(engine.Run()).To(Succeed())
		Expect(scroller.targets).To(Equal([]float64{900}))
		Expect(doc.Window().ScrollY()).To(Equal(0.0))
	})

	It("should scroll the window directly without a scroller", func() {
		dispatcher.Enqueue(Input{Time: 1, Type: Scroll, Y: 900})
		dispatcher.Enqueue(Input{Time: 2, Type: Resize, Width: 600, Height: 800})

		Expect(engine.Run()).To(Succeed())
		Expect(doc.Window().ScrollY()).To(Equal(900.0))
		Expect(doc.Window().InnerWidth()).To(Equal(600.0))
	})

	It("should fail on unknown input types", func() {
		dispatcher.Enqueue(Input{Time: 1, Type: EventType("wheel")})

		Expect(engine.Run()).NotTo(Succeed())
	})
})
