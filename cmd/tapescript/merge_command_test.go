package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tapescript/internal/merge"
	"tapescript/internal/testsupport"
)

func TestMergeCommandCombinesDayDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	dayDir := testsupport.NestedDayDir(t, env.baseDir, "2025", "01", "27")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "112256-162256.txt"), "late segment\n")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "061901-111901.txt"), "early segment\n")

	out, _, err := runCLI(t, []string{
		"merge", filepath.Join(dayDir, "*.txt"),
	}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	output := filepath.Join(dayDir, "2025-01-27.txt")
	requireContains(t, out, output)

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(content); got != "early segment\nlate segment\n" {
		t.Fatalf("merged content: %q", got)
	}

	for _, name := range []string{"061901-111901.txt", "112256-162256.txt"} {
		if _, err := os.Stat(filepath.Join(dayDir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("source %s should be deleted", name)
		}
	}
}

func TestMergeCommandNoDeletePreservesSources(t *testing.T) {
	env := setupCLITestEnv(t)

	dayDir := testsupport.NestedDayDir(t, env.baseDir, "2025", "01", "27")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "061901-111901.txt"), "early\n")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "112256-162256.txt"), "late\n")

	out, _, err := runCLI(t, []string{
		"merge", filepath.Join(dayDir, "*.txt"), "--no-delete",
	}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "preserved")

	for _, name := range []string{"061901-111901.txt", "112256-162256.txt"} {
		if _, err := os.Stat(filepath.Join(dayDir, name)); err != nil {
			t.Fatalf("source %s should survive: %v", name, err)
		}
	}
}

func TestMergeCommandMixedDatesFailsWithoutOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	testsupport.WriteSegment(t, filepath.Join(env.baseDir, "20250127_061901_111901.txt"), "one\n")
	testsupport.WriteSegment(t, filepath.Join(env.baseDir, "20250128_061901_111901.txt"), "two\n")

	pattern := filepath.Join(env.baseDir, "2025012*_*.txt")
	_, _, err := runCLI(t, []string{"merge", pattern}, env.configPath)
	if !errors.Is(err, merge.ErrMixedDates) {
		t.Fatalf("expected ErrMixedDates, got %v", err)
	}

	// With an explicit output the same inputs succeed.
	output := filepath.Join(env.baseDir, "combined.txt")
	if _, _, err := runCLI(t, []string{"merge", pattern, "--output", output}, env.configPath); err != nil {
		t.Fatalf("merge with --output: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("explicit output missing: %v", err)
	}
}

func TestMergeCommandFailsOnUnrecognizedName(t *testing.T) {
	env := setupCLITestEnv(t)

	dayDir := testsupport.NestedDayDir(t, env.baseDir, "2025", "01", "27")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "112256-162256.txt"), "segment\n")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "notes.txt"), "random notes\n")

	_, _, err := runCLI(t, []string{"merge", filepath.Join(dayDir, "*.txt")}, env.configPath)
	if err == nil {
		t.Fatal("expected unrecognized filename to fail the merge")
	}
	requireContains(t, err.Error(), "notes.txt")

	if _, statErr := os.Stat(filepath.Join(dayDir, "112256-162256.txt")); statErr != nil {
		t.Fatalf("segment must survive failed merge: %v", statErr)
	}
}

func TestMergeCommandEmitsJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	dayDir := testsupport.NestedDayDir(t, env.baseDir, "2025", "01", "27")
	testsupport.WriteSegment(t, filepath.Join(dayDir, "061901-111901.txt"), "early\n")

	out, _, err := runCLI(t, []string{
		"merge", filepath.Join(dayDir, "*.txt"), "--json",
	}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, `"output_path"`)
	requireContains(t, out, `"sources"`)
}
