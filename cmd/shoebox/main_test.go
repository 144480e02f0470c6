package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	photosPath string
	albumsPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	catalogDir := filepath.Join(base, "catalog")
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		photosPath: filepath.Join(catalogDir, "photos.json"),
		albumsPath: filepath.Join(catalogDir, "albums.json"),
	}

	body := strings.Join([]string{
		"[paths]",
		`catalog_dir = "` + catalogDir + `"`,
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
		"[logging]",
		`format = "json"`,
		`level = "info"`,
	}, "\n")
	if err := os.WriteFile(env.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	writeDoc(t, env.photosPath, `[
  {"id": 1, "filename": "a.jpg", "title": "A", "tags": ["x"], "albums": [10]},
  {"id": 2, "filename": "b.jpg", "resolution": [1920, 1080], "albums": [10]}
]`)
	writeDoc(t, env.albumsPath, `[
  {"id": 10, "name": "Trip"}
]`)

	return env
}

func writeDoc(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestCLIFindCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"find", "1"}, env.configPath, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	requireContains(t, out, "Filename: a.jpg")
	requireContains(t, out, "Date: Unknown")
	requireContains(t, out, "Albums: Trip")
	requireContains(t, out, "Tags: x")

	out, _, err = runCLI(t, []string{"find", "99"}, env.configPath, "")
	if err != nil {
		t.Fatalf("find miss: %v", err)
	}
	requireContains(t, out, "Photo not found")
}

func TestCLIFindJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"find", "2", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("find --json: %v", err)
	}
	requireContains(t, out, `"filename": "b.jpg"`)
	requireContains(t, out, `"resolution": "1920x1080"`)
	requireContains(t, out, `"Trip"`)
}

func TestCLIUpdateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"update", "1", "--title", "New Title"}, env.configPath, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, "Photo updated.")

	data, err := os.ReadFile(env.photosPath)
	if err != nil {
		t.Fatalf("read photos: %v", err)
	}
	requireContains(t, string(data), `"title": "New Title"`)
	// Description flag omitted, so the field stays untouched.
	requireContains(t, string(data), `"description": ""`)
}

func TestCLIAlbumCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"album", "trip"}, env.configPath, "")
	if err != nil {
		t.Fatalf("album: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected listing:\n%s", out)
	}
	if lines[0] != "filename,resolution,tags" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "a.jpg,,x" || lines[2] != "b.jpg,1920x1080," {
		t.Fatalf("unexpected rows: %q", lines[1:])
	}

	out, _, err = runCLI(t, []string{"album", "nowhere"}, env.configPath, "")
	if err != nil {
		t.Fatalf("album miss: %v", err)
	}
	requireContains(t, out, "Album not found")
}

func TestCLITagCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tag", "1", "Beach"}, env.configPath, "")
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	requireContains(t, out, "Updated!")

	out, _, err = runCLI(t, []string{"tag", "1", "BEACH"}, env.configPath, "")
	if err != nil {
		t.Fatalf("tag duplicate: %v", err)
	}
	requireContains(t, out, "Tag already exists, no changes made")

	data, err := os.ReadFile(env.photosPath)
	if err != nil {
		t.Fatalf("read photos: %v", err)
	}
	if strings.Count(string(data), "Beach") != 1 || strings.Contains(string(data), "BEACH") {
		t.Fatalf("expected exactly one beach tag with original casing, got:\n%s", data)
	}
}

func TestCLIOverviewCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"overview"}, env.configPath, "")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	requireContains(t, out, "Photos:")
	requireContains(t, out, "Trip")
}

func TestCLIConfigCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.photosPath)
}
