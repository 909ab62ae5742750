package safety

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func Test_AuditLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(&buf)

	entries := []AuditEntry{
		{Timestamp: time.Now(), Tool: "posts_list", Params: map[string]any{"first": 10}, Result: "success"},
		{Timestamp: time.Now(), Tool: "webhook_delete", Params: map[string]any{"id": "wh-1"}, Result: "error"},
	}
	for _, e := range entries {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log returned error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var decoded AuditEntry
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if decoded.Tool != "posts_list" || decoded.Result != "success" {
		t.Errorf("decoded entry = %+v", decoded)
	}

	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if decoded.Tool != "webhook_delete" {
		t.Errorf("decoded entry = %+v", decoded)
	}
}

func Test_AuditLogger_NilWriter(t *testing.T) {
	logger := NewAuditLogger(nil)
	if logger != nil {
		t.Fatal("NewAuditLogger(nil) should return nil")
	}
	// Logging through the nil logger must not panic.
	if err := logger.Log(AuditEntry{Tool: "posts_list"}); !errors.Is(err, ErrNilWriter) {
		t.Errorf("got %v, want ErrNilWriter", err)
	}
}

func Test_AuditLogger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = logger.Log(AuditEntry{Tool: "posts_list", Result: "success"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		var decoded AuditEntry
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Errorf("interleaved write produced invalid JSON: %v", err)
		}
	}
}
