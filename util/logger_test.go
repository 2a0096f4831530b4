package util_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"golang.org/x/term"

	"github.com/asatlas/peergroup/util"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(&buf, util.LevelInfo, "test", false)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Warn("also shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message leaked at info level:\n%s", got)
	}
	if !strings.Contains(got, "INFO test: shown 2") {
		t.Errorf("info message missing:\n%s", got)
	}
	if !strings.Contains(got, "WARN test: also shown") {
		t.Errorf("warn message missing:\n%s", got)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(&buf, util.LevelError, "test", false)

	logger.Info("quiet")
	logger.SetLevel(util.LevelDebug)
	logger.Debug("loud")

	got := buf.String()
	if strings.Contains(got, "quiet") {
		t.Errorf("info message leaked at error level:\n%s", got)
	}
	if !strings.Contains(got, "DEBUG test: loud") {
		t.Errorf("debug message missing after SetLevel:\n%s", got)
	}
}

func TestResolveColor(t *testing.T) {
	if !util.ResolveColor(true, false) {
		t.Errorf("ResolveColor(force) = false, want true")
	}
	if util.ResolveColor(false, true) {
		t.Errorf("ResolveColor(disable) = true, want false")
	}
	if !util.ResolveColor(true, true) {
		t.Errorf("ResolveColor(force, disable) = false, want force to win")
	}
	// with neither flag set the decision is pure TTY detection
	want := term.IsTerminal(int(os.Stdout.Fd()))
	if got := util.ResolveColor(false, false); got != want {
		t.Errorf("ResolveColor(default) = %t, want %t", got, want)
	}
}

func TestColorizerDisabled(t *testing.T) {
	c := &util.Colorizer{Enabled: false}
	if got := c.Red("plain"); got != "plain" {
		t.Errorf("disabled colorizer emitted %q", got)
	}
	c.Enabled = true
	if got := c.Red("plain"); got == "plain" {
		t.Errorf("enabled colorizer emitted no escape codes")
	}
}
