package classic

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Action
	}{
		{"arrow up", "\x1b[A", core.ActionUp},
		{"arrow down", "\x1b[B", core.ActionDown},
		{"arrow right", "\x1b[C", core.ActionRight},
		{"arrow left", "\x1b[D", core.ActionLeft},
		{"application arrow", "\x1bOA", core.ActionUp},
		{"w", "w", core.ActionUp},
		{"S", "S", core.ActionDown},
		{"a", "a", core.ActionLeft},
		{"D", "D", core.ActionRight},
		{"r", "r", core.ActionRetry},
		{"Q", "Q", core.ActionQuit},
		{"ctrl+c", "\x03", core.ActionQuit},
		{"h", "h", core.ActionHelp},
		{"i", "i", core.ActionHelp},
		{"unknown letter", "x", core.ActionNone},
		{"unknown sequence", "\x1b[Z", core.ActionNone},
		{"alt key", "\x1bx", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeKey(bytes.NewReader([]byte(tc.input)))
			if err != nil {
				t.Fatalf("DecodeKey(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("DecodeKey(%q) = %v, expected %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeKeySequence(t *testing.T) {
	r := bytes.NewReader([]byte("\x1b[Aw\x1b[Dq"))
	want := []core.Action{core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionQuit}

	for i, w := range want {
		got, err := DecodeKey(r)
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %v, expected %v", i, got, w)
		}
	}

	if _, err := DecodeKey(r); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF after the last key, got %v", err)
	}
}

func TestDecodeKeyTruncatedEscape(t *testing.T) {
	for _, input := range []string{"\x1b", "\x1b["} {
		if _, err := DecodeKey(bytes.NewReader([]byte(input))); !errors.Is(err, io.EOF) {
			t.Errorf("DecodeKey(%q) error = %v, expected EOF", input, err)
		}
	}
}
