package main

import (
	"os"
	"path/filepath"
	"testing"

	"tapescript/internal/testsupport"
)

func TestUpdateCommandWritesNestedOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:01 Speaker 1\nLine\n00:00:03 Speaker 2\n")

	out, _, err := runCLI(t, []string{
		"update", input,
		"--time", "18:01:12",
		"--date", "2024-12-25",
	}, env.configPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	wantOutput := filepath.Join(env.cfg.Paths.OutputDir, "2024", "12", "25", "180113-180115.txt")
	requireContains(t, out, wantOutput)

	content, err := os.ReadFile(wantOutput)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(content); got != "18:01:13 Speaker 1\nLine\n18:01:15 Speaker 2\n" {
		t.Fatalf("adjusted content: %q", got)
	}
}

func TestUpdateCommandWarnsOnOutOfOrderTimestamps(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:05 Later\n00:00:02 Earlier\n")

	_, stderr, err := runCLI(t, []string{
		"update", input,
		"--time", "10:00:00",
		"--date", "2024-12-25",
	}, env.configPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, stderr, "not in chronological order")
}

func TestUpdateCommandHonorsExplicitOutputDir(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:01 Hello\n")
	customRoot := filepath.Join(env.baseDir, "custom")

	_, _, err := runCLI(t, []string{
		"update", input,
		"--output-dir", customRoot,
		"--time", "09:00:00",
		"--date", "2025-01-27",
	}, env.configPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := filepath.Join(customRoot, "2025", "01", "27", "090001-090001.txt")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected output at %s: %v", want, err)
	}
}

func TestUpdateCommandEmitsJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:01 Hello\n")

	out, _, err := runCLI(t, []string{
		"update", input,
		"--time", "09:00:00",
		"--date", "2025-01-27",
		"--json",
	}, env.configPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, `"output_path"`)
	requireContains(t, out, `"out_of_order": false`)
}

func TestUpdateCommandRequiresTimeAndDate(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:01 Hello\n")

	if _, _, err := runCLI(t, []string{"update", input}, env.configPath); err == nil {
		t.Fatal("expected missing required flags to fail")
	}
}

func TestUpdateCommandRejectsMalformedTime(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "session.txt")
	testsupport.WriteSegment(t, input, "00:00:01 Hello\n")

	_, _, err := runCLI(t, []string{
		"update", input,
		"--time", "25:99:99",
		"--date", "2025-01-27",
	}, env.configPath)
	if err == nil {
		t.Fatal("expected malformed time to fail")
	}
}
