package ui

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status    string
	LastError error
	Dirty     bool
	FilePath  string
	Logs      []string

	LastUpdated time.Time
}

// AppState tracks the status shared between the Gio event loop and the
// file dialog goroutines. The scene itself is only touched from the event
// loop and is not part of it.
type AppState struct {
	mu sync.RWMutex

	status    string
	lastError error
	dirty     bool
	filePath  string

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		status:      "Ready",
		logLimit:    200,
		lastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Status:      s.status,
		LastError:   s.lastError,
		Dirty:       s.dirty,
		FilePath:    s.filePath,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
}

// SetStatus replaces the status line and clears the last error.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastError = nil
	s.lastUpdated = time.Now()
}

// SetError records err and shows it in the status line.
func (s *AppState) SetError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.status = err.Error()
	s.lastUpdated = time.Now()
	s.appendLog("error: " + err.Error())
}

// MarkDirty flags unsaved changes.
func (s *AppState) MarkDirty(dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = dirty
}

// SetFilePath records the file the sketch was last loaded from or saved to.
func (s *AppState) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
}

// Logf appends a log line and mirrors it to the standard logger.
func (s *AppState) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("ui: %s", msg)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLog(msg)
}

func (s *AppState) appendLog(msg string) {
	s.logs = append(s.logs, time.Now().Format("15:04:05")+" "+msg)
	if over := len(s.logs) - s.logLimit; over > 0 {
		s.logs = append([]string(nil), s.logs[over:]...)
	}
}
