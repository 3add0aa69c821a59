package notify

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestRecorder_KeepsHistoryAndLast(t *testing.T) {
	rec := &Recorder{}
	rec.Notify(Loading())
	rec.Notify(Success())

	last, ok := rec.Last()
	if !ok {
		t.Fatalf("expected a notification")
	}
	if last.Status != StatusSuccess || last.Message != MessageSuccess {
		t.Fatalf("unexpected last notification: %#v", last)
	}

	history := rec.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(history))
	}
	if history[0].Status != StatusLoading {
		t.Fatalf("unexpected first notification: %#v", history[0])
	}
}

func TestRecorder_EmptyLast(t *testing.T) {
	rec := &Recorder{}
	if _, ok := rec.Last(); ok {
		t.Fatalf("expected no notification on empty recorder")
	}
}

func TestFunc_NilIsNoop(t *testing.T) {
	var fn Func
	fn.Notify(Error()) // must not panic
}

func TestLogNotifier_ErrorLevelForFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)

	n := NewLogNotifier(logger)
	n.Notify(Error())

	out := buf.String()
	if !strings.Contains(out, "level=error") {
		t.Fatalf("expected error level output, got %q", out)
	}
	if !strings.Contains(out, MessageError) {
		t.Fatalf("expected toast copy in output, got %q", out)
	}
}

func TestLogNotifier_LoadingIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)

	NewLogNotifier(logger).Notify(Loading())

	if out := buf.String(); !strings.Contains(out, "level=debug") {
		t.Fatalf("expected debug level output, got %q", out)
	}
}
