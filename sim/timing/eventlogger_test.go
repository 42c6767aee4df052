package timing

import (
	"bytes"
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventLogger", func() {
	var (
		buf    *bytes.Buffer
		engine *SerialEngine
		frames *FrameScheduler
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		engine = NewSerialEngine()
		frames = NewFrameScheduler(engine, 10*Hz)
		frames.Start()
		AfterFunc(engine, 0.25, func(VTimeInSec) {})
	})

	lines := func() []string {
		return strings.Split(strings.TrimSpace(buf.String()), "\n")
	}

	It("should leave frames out by default", func() {
		engine.AcceptHook(NewEventLogger(log.New(buf, "", 0)))

		Expect(engine.RunUntil(0.5)).To(Succeed())

		Expect(lines()).To(Equal([]string{"0.2500, timing.TimerEvent"}))
	})

	It("should log frames when asked to", func() {
		engine.AcceptHook(NewEventLogger(log.New(buf, "", 0)).WithFrames())

		Expect(engine.RunUntil(0.5)).To(Succeed())

		Expect(lines()).To(HaveLen(7))
		Expect(lines()[0]).To(Equal("0.0000, frame 0"))
		Expect(lines()).To(ContainElement("0.2500, timing.TimerEvent"))
	})
})
