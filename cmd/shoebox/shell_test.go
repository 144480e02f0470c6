package main

import (
	"os"
	"strings"
	"testing"
)

func TestShellFindAndExit(t *testing.T) {
	env := setupCLITestEnv(t)

	stdin := strings.Join([]string{"1", "1", "5"}, "\n") + "\n"
	out, _, err := runCLI(t, nil, env.configPath, stdin)
	if err != nil {
		t.Fatalf("shell session: %v", err)
	}
	requireContains(t, out, "1) Find photo")
	requireContains(t, out, "Filename: a.jpg")
	requireContains(t, out, "Goodbye!")
}

func TestShellInvalidSelectionRedisplaysMenu(t *testing.T) {
	env := setupCLITestEnv(t)

	stdin := "9\n5\n"
	out, _, err := runCLI(t, nil, env.configPath, stdin)
	if err != nil {
		t.Fatalf("shell session: %v", err)
	}
	requireContains(t, out, "Invalid selection")
	if strings.Count(out, "1) Find photo") != 2 {
		t.Fatalf("expected menu to be shown twice:\n%s", out)
	}
}

func TestShellUpdateFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	// Option 2, photo 1, new title, keep description, then exit.
	stdin := strings.Join([]string{"2", "1", "Renamed", "", "5"}, "\n") + "\n"
	out, _, err := runCLI(t, nil, env.configPath, stdin)
	if err != nil {
		t.Fatalf("shell session: %v", err)
	}
	requireContains(t, out, "New title [A]: ")
	requireContains(t, out, "Photo updated.")

	data, err := os.ReadFile(env.photosPath)
	if err != nil {
		t.Fatalf("read photos: %v", err)
	}
	requireContains(t, string(data), `"title": "Renamed"`)
}

func TestShellTagFlowRejectsEmptyTag(t *testing.T) {
	env := setupCLITestEnv(t)

	stdin := strings.Join([]string{"4", "1", "   ", "5"}, "\n") + "\n"
	out, _, err := runCLI(t, nil, env.configPath, stdin)
	if err != nil {
		t.Fatalf("shell session: %v", err)
	}
	requireContains(t, out, "Tag cannot be empty")
	requireContains(t, out, "Goodbye!")
}

func TestShellEndsCleanlyOnEOF(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath, "")
	if err != nil {
		t.Fatalf("shell session should absorb EOF: %v", err)
	}
	requireContains(t, out, "1) Find photo")
}
