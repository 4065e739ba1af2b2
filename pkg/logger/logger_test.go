package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestZerologLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		log     func(l Logger)
		wantOut bool
	}{
		{
			name:    "info hidden at default warn level",
			level:   "",
			log:     func(l Logger) { l.Infof("cart created") },
			wantOut: false,
		},
		{
			name:    "warn shown at default level",
			level:   "",
			log:     func(l Logger) { l.Warnf("modification rejected") },
			wantOut: true,
		},
		{
			name:    "debug shown at debug level",
			level:   "debug",
			log:     func(l Logger) { l.Debugf("item added: %s", "Pencil") },
			wantOut: true,
		},
		{
			name:    "error hidden when disabled",
			level:   "disabled",
			log:     func(l Logger) { l.Errorf(errors.New("boom"), "failed") },
			wantOut: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewZerologLogger(&buf, FormatJSON)
			if tt.level != "" {
				if err := l.SetLevel(tt.level); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			tt.log(l)

			if got := buf.Len() > 0; got != tt.wantOut {
				t.Fatalf("expected output %v, got %q", tt.wantOut, buf.String())
			}
		})
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(&buf, FormatJSON).With("session_id", "abc")

	l.Warnf("session ended")

	if !strings.Contains(buf.String(), `"session_id":"abc"`) {
		t.Fatalf("expected session_id field, got %q", buf.String())
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := NewNopLogger().SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
