package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelInfo, &buf)
	defer Initialize(LevelQuiet, &buf)

	Info("info message", "key", "value")
	Debug("debug message")

	out := buf.String()
	if !strings.Contains(out, "info message") {
		t.Error("info message not logged at info level")
	}
	if strings.Contains(out, "debug message") {
		t.Error("debug message logged at info level")
	}
}

func TestWarnAlwaysVisible(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelQuiet, &buf)

	Warn("something off", "detail", 42)

	if !strings.Contains(buf.String(), "something off") {
		t.Error("warning not logged at quiet level")
	}
}

func TestVerbosityPredicates(t *testing.T) {
	var buf bytes.Buffer

	Initialize(LevelDebug, &buf)
	if !IsInfo() || !IsDebug() {
		t.Error("debug level should enable info and debug predicates")
	}

	Initialize(LevelQuiet, &buf)
	if IsInfo() || IsDebug() {
		t.Error("quiet level should disable info and debug predicates")
	}
}
