package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathFallsBackToWorkdir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{Dir: "  "})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("eval tmp dir failed: %v", err)
	}
	realGotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("eval log dir failed: %v", err)
	}
	if want := filepath.Join(realTmpDir, defaultLogDirName); realGotDir != want {
		t.Fatalf("log dir want %s got %s", want, realGotDir)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("log filename want %s got %s", defaultLogFilename, filepath.Base(got))
	}
}

func TestNewReleaseWritesJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "api.log"})
	log.Sugar().Infow("cart_item_added", "user_id", 7)
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "api.log"))
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, `"event":"cart_item_added"`) {
		t.Fatalf("expected event key in log, got %s", text)
	}
	if !strings.Contains(text, `"user_id":7`) {
		t.Fatalf("expected user_id field in log, got %s", text)
	}
}

func TestNewDebugSkipsFileSink(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("DEBUG", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug_only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create a log file")
	}
}

func TestPositiveOr(t *testing.T) {
	cases := []struct {
		value, fallback, want int
	}{
		{0, 5, 5},
		{-1, 5, 5},
		{3, 5, 3},
	}
	for _, tc := range cases {
		if got := positiveOr(tc.value, tc.fallback); got != tc.want {
			t.Fatalf("positiveOr(%d,%d) want %d got %d", tc.value, tc.fallback, tc.want, got)
		}
	}
}
