package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStateErrorAndStatus(t *testing.T) {
	s := NewState()
	s.SetError(errors.New("store: disk full"))
	snap := s.Snapshot()
	if snap.LastError == nil || snap.Status != "store: disk full" {
		t.Fatalf("Expected the error in the status line, got %+v", snap)
	}

	s.SetStatus("Saved")
	snap = s.Snapshot()
	if snap.LastError != nil || snap.Status != "Saved" {
		t.Errorf("Expected status to clear the error, got %+v", snap)
	}
}

func TestStateLogLimit(t *testing.T) {
	s := NewState()
	s.logLimit = 3
	for i := 0; i < 5; i++ {
		s.appendLog(fmt.Sprintf("line %d", i))
	}
	snap := s.Snapshot()
	if len(snap.Logs) != 3 {
		t.Fatalf("Expected 3 log lines, got %d", len(snap.Logs))
	}
	if !strings.HasSuffix(snap.Logs[0], "line 2") {
		t.Errorf("Expected oldest lines dropped, got %q", snap.Logs[0])
	}

	// snapshots are copies
	snap.Logs[0] = "changed"
	if s.Snapshot().Logs[0] == "changed" {
		t.Error("Expected snapshot logs to be independent of the state")
	}
}
