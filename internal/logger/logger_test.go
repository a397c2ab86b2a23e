package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	logg := New(&buf)
	logg.Infof("compressed %d bytes", 42)
	logg.Errorf("failed: %s", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "[INFO] compressed 42 bytes") {
		t.Errorf("wrong info line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[ERROR] failed: boom") {
		t.Errorf("wrong error line: %q", lines[1])
	}
}
