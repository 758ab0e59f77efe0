// 指示: miu200521358
package logging

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

func TestLoggerRespectsLevelAndBuffersMessages(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(zapcore.AddSync(&out))
	logger.SetLevel(LOG_LEVEL_INFO)

	logger.Debug("非表示: %d", 1)
	logger.Info("姿勢更新: tick=%d", 3)
	logger.Warn("警告: %s", "leftFoot")

	lines := logger.MessageBuffer().Lines()
	if len(lines) != 2 {
		t.Fatalf("buffered line count mismatch: got=%d lines=%v", len(lines), lines)
	}
	if lines[0] != "姿勢更新: tick=3" {
		t.Fatalf("info line mismatch: %q", lines[0])
	}
	if !strings.Contains(out.String(), "警告: leftFoot") {
		t.Fatalf("sink should receive warn line: %q", out.String())
	}
	if logger.IsDebugEnabled() {
		t.Fatalf("debug should be disabled at info level")
	}

	logger.SetLevel(LOG_LEVEL_DEBUG)
	logger.MessageBuffer().Clear()
	logger.Debug("表示: %d", 2)
	if lines := logger.MessageBuffer().Lines(); len(lines) != 1 || lines[0] != "表示: 2" {
		t.Fatalf("debug line mismatch: %v", lines)
	}
}

func TestSetDefaultLoggerReplacesProcessLogger(t *testing.T) {
	prevLogger := DefaultLogger()
	t.Cleanup(func() {
		SetDefaultLogger(prevLogger)
	})

	logger := NewNopLogger()
	SetDefaultLogger(logger)
	if DefaultLogger() != ILogger(logger) {
		t.Fatalf("default logger should be replaced")
	}
	DefaultLogger().Info("破棄される: %s", "nop")
	if lines := logger.MessageBuffer().Lines(); len(lines) != 0 {
		t.Fatalf("nop logger should not buffer: %v", lines)
	}
}

func TestMessageBufferKeepsOnlyRecentLines(t *testing.T) {
	buffer := NewMessageBufferWithCapacity(3)
	for i := 1; i <= 5; i++ {
		if _, err := fmt.Fprintf(buffer, "行%d\n", i); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	if diff := cmp.Diff([]string{"行3", "行4", "行5"}, buffer.Lines()); diff != "" {
		t.Fatalf("ring order mismatch (-want +got):\n%s", diff)
	}

	buffer.Clear()
	if _, err := buffer.Write([]byte("再開\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if diff := cmp.Diff([]string{"再開"}, buffer.Lines()); diff != "" {
		t.Fatalf("lines after clear mismatch (-want +got):\n%s", diff)
	}
}

func TestLoggerBufferIsBoundedOnLongRuns(t *testing.T) {
	logger := NewLogger(zapcore.AddSync(io.Discard))
	logger.SetLevel(LOG_LEVEL_DEBUG)
	total := DEFAULT_MESSAGE_BUFFER_CAPACITY*3 + 7
	for i := 0; i < total; i++ {
		logger.Debug("補助点候補: tick=%d", i)
	}
	lines := logger.MessageBuffer().Lines()
	if len(lines) != logger.MessageBuffer().Capacity() {
		t.Fatalf("buffer should stay at capacity: %d", len(lines))
	}
	if want := fmt.Sprintf("補助点候補: tick=%d", total-1); lines[len(lines)-1] != want {
		t.Fatalf("latest line mismatch: %q", lines[len(lines)-1])
	}
}
