package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func withBuffers(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	SetColored(false)
	originalVerbose := IsVerbose()

	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetColored(true)
		SetVerbose(originalVerbose)
	})

	return &out, &errOut
}

func TestDebugf_VerboseOff(t *testing.T) {
	out, _ := withBuffers(t)
	SetVerbose(false)

	Debugf("hidden %d", 1)

	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestDebugf_VerboseOn(t *testing.T) {
	out, _ := withBuffers(t)
	SetVerbose(true)

	Debugf("visible %d", 2)

	if got := out.String(); got != "[DBG] visible 2\n" {
		t.Errorf("Unexpected output %q", got)
	}
}

func TestLevelsRouting(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(string, ...interface{})
		prefix   string
		toStderr bool
	}{
		{"info", Infof, "[INF]", false},
		{"warn", Warnf, "[WRN]", false},
		{"error", Errorf, "[ERR]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := withBuffers(t)

			tt.logFunc("message %s", tt.name)

			target, other := out, errOut
			if tt.toStderr {
				target, other = errOut, out
			}
			if !strings.HasPrefix(target.String(), tt.prefix+" message "+tt.name) {
				t.Errorf("Expected %s prefix, got %q", tt.prefix, target.String())
			}
			if other.Len() != 0 {
				t.Errorf("Expected nothing on the other stream, got %q", other.String())
			}
		})
	}
}

func TestColoredPrefix(t *testing.T) {
	out, _ := withBuffers(t)
	SetColored(true)

	Infof("hello")

	if !strings.Contains(out.String(), "\033[36m[INF]\033[0m") {
		t.Errorf("Expected colored prefix, got %q", out.String())
	}
}
