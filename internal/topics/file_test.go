package topics

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTopicsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeTopicsFile(t, "1. Machine Learning Fundamentals\n\n2) Effective Business Communication\n   \n3 Photography Basics\nPlain Topic\n")
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	want := []string{
		"Machine Learning Fundamentals",
		"Effective Business Communication",
		"Photography Basics",
		"Plain Topic",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d topics, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topic %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := writeTopicsFile(t, "\n   \n\n")
	if _, err := ReadFile(path); err == nil {
		t.Fatalf("expected error for file without topics")
	}
}
