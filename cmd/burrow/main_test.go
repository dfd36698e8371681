package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/burrow/pkg/core"
)

// setupCLI isolates the environment and returns a fresh projects directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("BURROW_EDITOR", "")
	t.Setenv("BURROW_PROJECTS_DIR", "")
	return filepath.Join(home, "projects")
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// flag variables are package globals shared across runs
	verbose, configPath, projectsDir = false, "", ""
	editorCommand, assumeYes = "", false
	listJSON, listYAML, watchJSON = false, false, false
	watchTypes = nil
	cfg = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestEditCommand(t *testing.T) {
	requireShell(t)
	root := setupCLI(t)

	_, _, err := run(t, "", "--projects-dir", root, "edit", "work/api", "--editor", "true")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "work", "api.yml"))
	require.NoError(t, err)

	var skel map[string]any
	require.NoError(t, yaml.Unmarshal(content, &skel))
	assert.Equal(t, "api", skel["name"])
}

func TestEditCommandRunsEditorOnFile(t *testing.T) {
	requireShell(t)
	root := setupCLI(t)

	_, _, err := run(t, "", "--projects-dir", root, "edit", "notes",
		"--editor", `sh -c 'printf "name: edited\n" > "$1"' sh`)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "notes.yml"))
	require.NoError(t, err)
	assert.Equal(t, "name: edited\n", string(content))
}

func TestEditCommandUsesConfiguredEditor(t *testing.T) {
	requireShell(t)
	root := setupCLI(t)
	t.Setenv("BURROW_EDITOR", "false")

	_, _, err := run(t, "", "--projects-dir", root, "edit", "p")
	assert.Error(t, err, "the configured editor exits non-zero")
	assert.FileExists(t, filepath.Join(root, "p.yml"), "file is created before the editor runs")
}

func TestNewCommandSkipsExisting(t *testing.T) {
	requireShell(t)
	root := setupCLI(t)
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "p.yml"), []byte("keep\n"), 0644))

	// "false" would fail if it were launched
	_, _, err := run(t, "", "--projects-dir", root, "new", "p", "--editor", "false")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "p.yml"))
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(content))
}

func TestEditCommandRejectsBadNames(t *testing.T) {
	root := setupCLI(t)

	_, _, err := run(t, "", "--projects-dir", root, "edit", "ns/", "--editor", "true")
	assert.ErrorIs(t, err, core.ErrProjectNameTrailingSlash)

	_, _, err = run(t, "", "--projects-dir", root, "edit", "/abs", "--editor", "true")
	assert.ErrorIs(t, err, core.ErrProjectNameAbsolutePath)
}

func TestRemoveCommand(t *testing.T) {
	root := setupCLI(t)
	path := filepath.Join(root, "a", "b", "p.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))

	t.Run("Declined", func(t *testing.T) {
		stdout, stderr, err := run(t, "n", "--projects-dir", root, "remove", "a/b/p")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Are you sure you want to remove")
		assert.FileExists(t, path)
	})

	t.Run("Confirmed", func(t *testing.T) {
		stdout, _, err := run(t, "y", "--projects-dir", root, "rm", "a/b/p")
		require.NoError(t, err)
		assert.Equal(t, "Removed a/b/p\n", stdout)
		assert.NoDirExists(t, filepath.Join(root, "a"))
		assert.DirExists(t, root)
	})

	t.Run("Missing", func(t *testing.T) {
		_, _, err := run(t, "", "--projects-dir", root, "delete", "a/b/p", "--yes")
		assert.ErrorIs(t, err, core.ErrProjectDoesNotExist)
	})
}

func TestListCommand(t *testing.T) {
	root := setupCLI(t)
	for _, name := range []string{"dotfiles.yml", "work/api.yml", "work/web.yml"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	t.Run("Plain", func(t *testing.T) {
		stdout, _, err := run(t, "", "--projects-dir", root, "list")
		require.NoError(t, err)
		assert.Equal(t, "dotfiles\nwork/api\nwork/web\n", stdout)
	})

	t.Run("Pattern", func(t *testing.T) {
		stdout, _, err := run(t, "", "--projects-dir", root, "list", "work/*")
		require.NoError(t, err)
		assert.Equal(t, "work/api\nwork/web\n", stdout)
	})

	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := run(t, "", "--projects-dir", root, "list", "--json")
		require.NoError(t, err)

		var projects []core.Project
		require.NoError(t, json.Unmarshal([]byte(stdout), &projects))
		require.Len(t, projects, 3)
		assert.Equal(t, filepath.Join(root, "dotfiles.yml"), projects[0].Path)
	})

	t.Run("YAML", func(t *testing.T) {
		stdout, _, err := run(t, "", "--projects-dir", root, "list", "--yaml", "dot*")
		require.NoError(t, err)

		var projects []core.Project
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "dotfiles", projects[0].Name)
	})

	t.Run("Conflicting Formats", func(t *testing.T) {
		_, _, err := run(t, "", "--projects-dir", root, "list", "--json", "--yaml")
		assert.Error(t, err)
	})
}

func TestWatchCommandRejectsInvalidPattern(t *testing.T) {
	root := setupCLI(t)

	_, _, err := run(t, "", "--projects-dir", root, "watch", "work/[")
	assert.Error(t, err)
}

func TestWatchCommandRejectsUnknownType(t *testing.T) {
	root := setupCLI(t)

	_, _, err := run(t, "", "--projects-dir", root, "watch", "--type", "rename")
	assert.ErrorContains(t, err, "unknown event type")
}

func TestInfoCommand(t *testing.T) {
	root := setupCLI(t)

	stdout, _, err := run(t, "", "--projects-dir", root, "info")
	require.NoError(t, err)

	var report struct {
		Config struct {
			ProjectsDir string `json:"projects_dir"`
		} `json:"config"`
		Service struct {
			RepositoryType string `json:"repository_type"`
		} `json:"service"`
		Repository struct {
			Root      string `json:"root"`
			Extension string `json:"extension"`
		} `json:"repository"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, root, report.Config.ProjectsDir)
	assert.Equal(t, "repository", report.Service.RepositoryType)
	assert.Equal(t, root, report.Repository.Root)
	assert.Equal(t, ".yml", report.Repository.Extension)
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)

	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "burrow version "))
}

func TestConfigFlag(t *testing.T) {
	root := setupCLI(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("projects_dir: "+root+"\n"), 0644))
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "from-config.yml"), nil, 0644))

	stdout, _, err := run(t, "", "--config", configFile, "list")
	require.NoError(t, err)
	assert.Equal(t, "from-config\n", stdout)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
