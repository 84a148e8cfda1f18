package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Compiled commands ", false)
	if len(lines) != 2 || lines[0] != "== Compiled commands ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header: %#v", lines)
	}

	colored := renderSectionHeader("Commands", true)
	if !strings.HasPrefix(colored[0], ansiBlue) || !strings.HasSuffix(colored[0], ansiReset) {
		t.Fatalf("expected ANSI colors, got %q", colored[0])
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
