package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func initDebugLog(t *testing.T) string {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "test.log")
	err := Init(Config{
		FilePath: logFile,
		Level:    ParseLevel("debug"),
		Format:   FormatText,
	})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return logFile
}

func TestTime(t *testing.T) {
	initDebugLog(t)
	defer Shutdown()

	executed := false
	Time("test operation", func() {
		time.Sleep(10 * time.Millisecond)
		executed = true
	})

	if !executed {
		t.Error("Time() did not execute the function")
	}
}

func TestTimeWithNoLogging(t *testing.T) {
	if err := Init(Config{FilePath: ""}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	executed := false
	Time("test operation", func() {
		executed = true
	})

	if !executed {
		t.Error("Time() did not execute the function when logging is disabled")
	}
}

func TestStartEnd(t *testing.T) {
	logFile := initDebugLog(t)

	timing := Start("enhance prompt")
	time.Sleep(5 * time.Millisecond)
	if timing.Elapsed() < 5*time.Millisecond {
		t.Errorf("Elapsed() = %v, want >= 5ms", timing.Elapsed())
	}
	End(timing, "provider", "mock")
	Shutdown()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "enhance prompt") || !strings.Contains(string(data), "provider=mock") {
		t.Errorf("unexpected log content: %s", data)
	}
}

func TestEndWithError(t *testing.T) {
	logFile := initDebugLog(t)

	EndWithError(Start("ok call"), nil)
	EndWithError(Start("bad call"), errors.New("quota exceeded"), "provider", "gemini")
	Shutdown()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "level=DEBUG msg=\"ok call\"") {
		t.Errorf("missing debug entry: %s", content)
	}
	if !strings.Contains(content, "level=ERROR msg=\"bad call failed\"") {
		t.Errorf("missing error entry: %s", content)
	}
	if !strings.Contains(content, "quota exceeded") {
		t.Errorf("missing error cause: %s", content)
	}
}
