package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRecorderCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "history.db")

	rec, err := openRecorder(path)
	if err != nil {
		t.Fatalf("openRecorder: %v", err)
	}
	defer rec.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("history directory missing: %v", err)
	}
}

func TestOpenRecorderBadDirectory(t *testing.T) {
	// A regular file where the directory should go makes MkdirAll fail;
	// the error must surface instead of being swallowed.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := openRecorder(filepath.Join(blocker, "sub", "history.db")); err == nil {
		t.Error("openRecorder under a regular file should fail")
	}
}
