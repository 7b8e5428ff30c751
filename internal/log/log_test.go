package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)
			logger.Debug("outline inferred", "entries", 3)
			logger.Info("saved", "file", "a.pdf")

			out := buf.String()
			if got := strings.Contains(out, "outline inferred"); got != tt.wantDebug {
				t.Errorf("debug record present = %v, want %v:\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "level=INFO msg=saved file=a.pdf") {
				t.Errorf("info record missing:\n%s", out)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
}
