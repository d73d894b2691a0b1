package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := Size(tt.n); got != tt.want {
			t.Errorf("Size(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPrintWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	Out = &buf
	defer func() { Out = old }()

	PrintSuccess("wrote %d files", 3)
	PrintError("bad %s", "input")
	PrintKeyValue("Mode", "minify")

	got := buf.String()
	for _, want := range []string{"wrote 3 files", "bad input", "Mode:", "minify"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
