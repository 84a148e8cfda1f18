package outfile_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cmddoc/internal/outfile"
)

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.md")

	err := outfile.Write(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "| Name | Description |\n")
		return err
	})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "| Name | Description |\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestWriteKeepsExistingFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.md")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	boom := errors.New("render failed")
	err := outfile.Write(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "previous" {
		t.Fatalf("expected previous content to survive, got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file %s left behind", entry.Name())
		}
	}
}

func TestWriteRejectsMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "commands.md")
	err := outfile.Write(path, func(io.Writer) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing directory error, got %v", err)
	}
}

func TestWriteRequiresPath(t *testing.T) {
	if err := outfile.Write("  ", func(io.Writer) error { return nil }); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestCheckDirectoryRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := outfile.CheckDirectory(file); err == nil {
		t.Fatal("expected error for non-directory")
	}
}

func TestWriteConcurrentCallersDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.md")
	bodies := []string{strings.Repeat("a", 4096), strings.Repeat("b", 4096)}

	var wg sync.WaitGroup
	for _, body := range bodies {
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			err := outfile.Write(path, func(w io.Writer) error {
				for i := 0; i < len(body); i += 512 {
					if _, err := io.WriteString(w, body[i:i+512]); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				t.Errorf("Write returned error: %v", err)
			}
		}(body)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != bodies[0] && string(data) != bodies[1] {
		t.Fatalf("output mixes writers: %q...", data[:16])
	}
}
