package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func runWithArgs(t *testing.T, args ...string) int {
	t.Helper()
	origArgs, origFlags := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = origArgs, origFlags
	})
	os.Args = append([]string{"fontbake"}, args...)
	flag.CommandLine = flag.NewFlagSet("fontbake", flag.ContinueOnError)
	return run()
}

func TestRunUsage(t *testing.T) {
	if code := runWithArgs(t); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRunExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fonts", "goregular.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	code := runWithArgs(t, "-base", dir, "-system=false", "-no-default-fallbacks",
		"fonts/goregular.ttf", "fonts/missing.ttf")
	if code != 1 {
		t.Errorf("run() = %d, want 1 when a font fails", code)
	}
	for _, name := range []string{"goregular_12.dat", "goregular_0_12.tga"} {
		if _, err := os.Stat(filepath.Join(dir, "fonts2", name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	if code := runWithArgs(t, "-base", dir, "-system=false", "-no-default-fallbacks", "fonts/goregular.ttf"); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}
