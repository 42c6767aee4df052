// Package contactform implements the contact form: the button feedback
// shown while a message is being sent and after it went out.
package contactform

import (
	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Button texts and colors.
const (
	SendingText    = "Sending..."
	SentText       = "Message Sent!"
	FailedText     = "Send Failed"
	SentBackground = "#22c55e"
)

// Delays of the feedback sequence.
const (
	DefaultSentDelay    = timing.VTimeInSec(1.5)
	DefaultRestoreDelay = timing.VTimeInSec(3)
)

// A Submitter delivers the fields of a form.
type Submitter interface {
	Submit(fields map[string]string) error
}

// StubSubmitter keeps what it receives and fails with Err when set.
type StubSubmitter struct {
	Err      error
	Received []map[string]string
}

// Submit records fields.
func (s *StubSubmitter) Submit(fields map[string]string) error {
	s.Received = append(s.Received, fields)
	return s.Err
}

// Phase is where a form is in its feedback sequence.
type Phase int

// Phases of a form.
const (
	Idle Phase = iota
	Sending
	Sent
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	}

	return "unknown"
}

type field struct {
	el       *page.Element
	name     string
	defValue string
}

// A Form drives the contact form. A submission disables the button, hands
// the fields to the Submitter and, after the sent delay, reports the
// outcome on the button. The button comes back after the restore delay.
type Form struct {
	*interact.ComponentBase

	engine       timing.EventScheduler
	form         *page.Element
	button       *page.Element
	fields       []field
	submitter    Submitter
	sentDelay    timing.VTimeInSec
	restoreDelay timing.VTimeInSec

	phase        Phase
	originalText string
	submitted    int
	failed       int
	ignored      int
}

// Phase returns the current phase.
func (f *Form) Phase() Phase {
	return f.phase
}

// Submitted returns how many submissions reached the Submitter.
func (f *Form) Submitted() int {
	return f.submitted
}

// Failed returns how many submissions the Submitter rejected.
func (f *Form) Failed() int {
	return f.failed
}

// Ignored returns how many submissions arrived while the button was
// disabled.
func (f *Form) Ignored() int {
	return f.ignored
}

// Fields returns the current values of the named fields.
func (f *Form) Fields() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, fd := range f.fields {
		values[fd.name] = fd.el.Value()
	}

	return values
}

// Submit starts the feedback sequence. While the sequence runs the button is
// disabled and further submissions are ignored.
func (f *Form) Submit(now timing.VTimeInSec) {
	if f.phase != Idle {
		f.ignored++
		f.NotifyTransition(now, "ignored", f.phase.String())

		return
	}

	f.originalText = f.button.Text()
	f.button.SetText(SendingText)
	f.button.SetDisabled(true)
	f.setPhase(now, Sending)

	err := f.submitter.Submit(f.Fields())
	f.submitted++

	timing.AfterFunc(f.engine, f.sentDelay, func(now timing.VTimeInSec) {
		f.report(now, err)
	})
}

func (f *Form) report(now timing.VTimeInSec, err error) {
	if err != nil {
		f.failed++
		f.button.SetText(FailedText)
		f.setPhase(now, Failed)
	} else {
		f.button.SetText(SentText)
		f.button.SetStyle("background", SentBackground)
		f.reset()
		f.setPhase(now, Sent)
	}

	timing.AfterFunc(f.engine, f.restoreDelay, f.restore)
}

func (f *Form) restore(now timing.VTimeInSec) {
	f.button.SetText(f.originalText)
	f.button.SetStyle("background", "")
	f.button.SetDisabled(false)
	f.setPhase(now, Idle)
}

func (f *Form) reset() {
	for _, fd := range f.fields {
		fd.el.SetValue(fd.defValue)
	}
}

func (f *Form) setPhase(now timing.VTimeInSec, p Phase) {
	from := f.phase
	f.phase = p
	f.NotifyTransition(now, "phase", from.String()+"->"+p.String())
}
