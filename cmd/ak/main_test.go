package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ak")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPrintsAndExitsZero(t *testing.T) {
	path := writeScript(t, `println(1 + 2 * 3)`)
	var code int
	out := captureStdout(t, func() { code = run([]string{path}) })
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.TrimSpace(out) != "7" {
		t.Errorf("stdout = %q, want 7", out)
	}
}

func TestRunExitsOneOnParseError(t *testing.T) {
	path := writeScript(t, `let x = `)
	if code := run([]string{path}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunExitsOneOnEvalError(t *testing.T) {
	path := writeScript(t, `const k = 1; k = 2`)
	if code := run([]string{path}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunMissingFileExitsOne(t *testing.T) {
	if code := run([]string{filepath.Join(t.TempDir(), "missing.ak")}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunVersionExitsZero(t *testing.T) {
	out := captureStdout(t, func() {
		if code := run([]string{"--version"}); code != 0 {
			t.Errorf("exit code = %d, want 0", code)
		}
	})
	if !strings.HasPrefix(strings.TrimSpace(out), "ak ") {
		t.Errorf("stdout = %q, want it to start with %q", out, "ak ")
	}
}
