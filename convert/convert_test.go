package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func setupInputDir(t *testing.T) string {
	dir := t.TempDir()
	for _, name := range []string{"fig1.eps", "fig2.eps", ".hidden.eps", "notes.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBatch(t *testing.T) {
	inDir := setupInputDir(t)
	outDir := t.TempDir()

	// cp stands in for magick: two positional arguments, input then output
	converted, failures := Batch(inDir, outDir, ".eps", ".tiff", "cp", 0)
	if converted != 2 || len(failures) != 0 {
		t.Fatalf("expected 2 conversions and no failures, got %d and %d", converted, len(failures))
	}

	for _, name := range []string{"fig1.tiff", "fig2.tiff"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Error("expected output file", name, err)
		}
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Error("dotfiles and non-matching extensions should be skipped", len(entries))
	}
}

func TestBatchCollectsFailures(t *testing.T) {
	inDir := setupInputDir(t)
	outDir := t.TempDir()

	// false exits nonzero for every file, the batch must still visit all of them
	converted, failures := Batch(inDir, outDir, ".eps", ".tiff", "false", 0)
	if converted != 0 || len(failures) != 2 {
		t.Fatalf("expected 0 conversions and 2 failures, got %d and %d", converted, len(failures))
	}
	for i := range failures {
		if failures[i].Err == nil {
			t.Error("failure must carry the command error", failures[i])
		}
	}
}
