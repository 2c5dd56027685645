package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMessage_FilePath(t *testing.T) {
	m := Message{ID: 42}

	if got := m.FilePath(); got != "messages/42.json" {
		t.Errorf("FilePath() = %q, want %q", got, "messages/42.json")
	}

	if got := m.CommitMessage(); got != "Update message 42" {
		t.Errorf("CommitMessage() = %q, want %q", got, "Update message 42")
	}
}

func TestMessage_Synced(t *testing.T) {
	empty := ""
	hash := "abc123"

	tests := []struct {
		name string
		hash *string
		want bool
	}{
		{"nil hash", nil, false},
		{"empty hash", &empty, false},
		{"set hash", &hash, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{GitHash: tt.hash}
			if got := m.Synced(); got != tt.want {
				t.Errorf("Synced() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage_JSONFieldNames(t *testing.T) {
	m := Message{
		ID:        7,
		Content:   "hello",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, field := range []string{`"id":7`, `"content":"hello"`, `"repository_id":null`, `"git_hash":null`, `"timestamp":`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("JSON %s does not contain %s", data, field)
		}
	}
}

func TestRepository_FullName(t *testing.T) {
	r := Repository{Owner: "alice", Name: "proj"}

	if got := r.FullName(); got != "alice/proj" {
		t.Errorf("FullName() = %q, want %q", got, "alice/proj")
	}
}

func TestSyncOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  SyncOutcome
		expected string
	}{
		{SyncSkipped, "skipped"},
		{SyncSynced, "synced"},
		{SyncFailed, "failed"},
		{SyncOutcome(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.expected {
				t.Errorf("SyncOutcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
			}
		})
	}
}

func TestSyncResult_VersionPtr(t *testing.T) {
	if v := (SyncResult{Outcome: SyncSkipped}).VersionPtr(); v != nil {
		t.Errorf("VersionPtr() on skip = %v, want nil", *v)
	}

	if v := (SyncResult{Outcome: SyncFailed, Version: "x"}).VersionPtr(); v != nil {
		t.Errorf("VersionPtr() on failure = %v, want nil", *v)
	}

	v := (SyncResult{Outcome: SyncSynced, Version: "abc123"}).VersionPtr()
	if v == nil || *v != "abc123" {
		t.Errorf("VersionPtr() = %v, want abc123", v)
	}
}

func TestSweepReport_Add(t *testing.T) {
	var r SweepReport

	r.Add(SyncResult{Outcome: SyncSynced})
	r.Add(SyncResult{Outcome: SyncSynced})
	r.Add(SyncResult{Outcome: SyncSkipped})
	r.Add(SyncResult{Outcome: SyncFailed})

	if r.Synced != 2 || r.Skipped != 1 || r.Failed != 1 {
		t.Errorf("SweepReport = %+v, want synced=2 skipped=1 failed=1", r)
	}
}
