package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/plannie/internal/tuitest"
)

func TestPlannieEntryAndFirstAnswer(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-images", "--latency", "0s"},
		Dir:     t.TempDir(),
		Env:     []string{"PLANNIE_CACHE_DIR=" + t.TempDir()},
		Width:   100,
		Height:  40,
		Steps: []tuitest.Step{
			tuitest.WaitFor("안녕하세요! 무엇을 도와드릴까요?"),
			tuitest.Type("hello planner"),
			tuitest.Press(tuitest.KeyEnter),
			tuitest.WaitFor("Follow-ups"),
			tuitest.Press(tuitest.KeyCtrlC),
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if !rec.Contains("안녕하세요! 무엇을 도와드릴까요?") {
		t.Fatalf("entry screen never rendered")
	}
	if !rec.Contains("hello planner") {
		t.Fatalf("submitted message never rendered")
	}
	if !rec.Contains("Follow-ups") {
		t.Fatalf("answer sections never rendered")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "plannie-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
