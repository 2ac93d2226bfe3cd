package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sueflow/sueflow/logging"
)

func TestLogger_InfofWritesAtFullNotifications(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.FullNotifications)
	l.Infof("hello %s", "world")

	if !strings.Contains(buf.String(), "hello world") {
		t.Fatalf("output %q does not contain message", buf.String())
	}
}

func TestLogger_DebugfSuppressedBelowFullDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.FullNotifications)
	l.Debugf("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty (debug suppressed at FullNotifications)", buf.String())
	}
}

func TestLogger_NopDiscardsEverything(t *testing.T) {
	l := logging.NewNop()
	l.Errorf("this goes nowhere")
	// No observable output to assert on; this test documents that NewNop
	// never panics and is safe to call unconditionally.
}
