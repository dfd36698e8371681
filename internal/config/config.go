// Package config loads burrow's settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName names the config directory under the user config dir.
	AppName = "burrow"
	// EnvPrefix prefixes environment overrides, e.g. BURROW_EDITOR.
	EnvPrefix = "BURROW_"

	defaultEditor      = "vi"
	defaultTmuxCommand = "tmux"
)

// Config holds the resolved settings.
type Config struct {
	// Editor is the command line used to edit project files.
	Editor string `koanf:"editor" json:"editor" yaml:"editor"`
	// ProjectsDir is the absolute root of the project store.
	ProjectsDir string `koanf:"projects_dir" json:"projects_dir" yaml:"projects_dir"`
	// TmuxCommand is the tmux binary handed to project configs.
	TmuxCommand string `koanf:"tmux_command" json:"tmux_command" yaml:"tmux_command"`

	// Source is the config file that was read, empty if none.
	Source string `koanf:"-" json:"source,omitempty" yaml:"source,omitempty"`
}

// DefaultPath returns <user config dir>/burrow/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// Load reads the YAML file at path, then applies BURROW_* environment
// overrides and fills in defaults.
//
// Precedence (highest first):
//  1. BURROW_EDITOR, BURROW_PROJECTS_DIR, BURROW_TMUX_COMMAND
//  2. the config file
//  3. $VISUAL, then $EDITOR, then "vi" for the editor;
//     <user config dir>/burrow/projects for the projects directory
//
// An empty path selects DefaultPath, which may be missing. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	var source string
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		source = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file yet
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// BURROW_PROJECTS_DIR -> projects_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = source

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) error {
	if strings.TrimSpace(cfg.Editor) == "" {
		cfg.Editor = DefaultEditor()
	}
	if cfg.TmuxCommand == "" {
		cfg.TmuxCommand = defaultTmuxCommand
	}

	if cfg.ProjectsDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to locate config directory: %w", err)
		}
		cfg.ProjectsDir = filepath.Join(dir, AppName, "projects")
	}

	dir, err := ExpandPath(cfg.ProjectsDir)
	if err != nil {
		return err
	}
	cfg.ProjectsDir = dir
	return nil
}

// DefaultEditor returns $VISUAL, then $EDITOR, then "vi".
func DefaultEditor() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return defaultEditor
}

// ExpandPath resolves a leading "~" to the home directory and makes the
// result absolute.
func ExpandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return abs, nil
}
