package datarecording

import (
	"os"
	"strings"
	"time"
)

// SessionInfo is one property of a recorded run.
type SessionInfo struct {
	Property string
	Value    string
}

// SessionTable is the table SessionRecorder writes to.
const SessionTable = "session_info"

// SessionRecorder records when and how a run happened.
type SessionRecorder struct {
	recorder DataRecorder
	entries  []SessionInfo
	now      func() time.Time
}

// NewSessionRecorder creates the session table on recorder.
func NewSessionRecorder(recorder DataRecorder) (*SessionRecorder, error) {
	if err := recorder.CreateTable(SessionTable, SessionInfo{}); err != nil {
		return nil, err
	}

	return &SessionRecorder{recorder: recorder, now: time.Now}, nil
}

// Start notes the start time, the command line and the working directory.
func (s *SessionRecorder) Start() {
	s.Set("Start Time", s.now().Format(time.RFC3339Nano))
	s.Set("Command", strings.Join(os.Args, " "))

	if wd, err := os.Getwd(); err == nil {
		s.Set("Working Directory", wd)
	}
}

// Set notes a property of the run.
func (s *SessionRecorder) Set(property, value string) {
	s.entries = append(s.entries, SessionInfo{Property: property, Value: value})
}

// End writes the noted properties and the end time, then flushes.
func (s *SessionRecorder) End() error {
	s.Set("End Time", s.now().Format(time.RFC3339Nano))

	for _, e := range s.entries {
		if err := s.recorder.InsertData(SessionTable, e); err != nil {
			return err
		}
	}

	s.entries = nil

	return s.recorder.Flush()
}
