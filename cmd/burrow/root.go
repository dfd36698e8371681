package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/burrow"
	"github.com/aretw0/burrow/internal/config"
	"github.com/aretw0/burrow/pkg/core"
	"github.com/aretw0/burrow/pkg/editor"
	"github.com/aretw0/burrow/pkg/prompt"
)

var (
	verbose     bool
	configPath  string
	projectsDir string

	// cfg is loaded before every command runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Manage tmux project files",
	Long: `burrow keeps tmux project descriptions as YAML files in one directory.
Projects are named by their path below that directory, e.g. "work/api".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if projectsDir != "" {
			loaded.ProjectsDir = projectsDir
		}
		cfg = loaded

		logger.Debug("configuration loaded", "source", cfg.Source, "projects_dir", cfg.ProjectsDir)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

// openService wires the project service to the command's streams.
func openService(cmd *cobra.Command) (*core.Service, error) {
	logger := slog.Default()

	return burrow.New(cfg.ProjectsDir,
		burrow.WithLogger(logger),
		burrow.WithEditor(&editor.Launcher{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logger,
		}),
		burrow.WithConfirmer(&prompt.Prompter{
			In:  cmd.InOrStdin(),
			Out: cmd.ErrOrStderr(),
		}),
		burrow.WithWatcherErrorHandler(func(err error) {
			logger.Warn("watch error", "error", err)
		}),
	)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <user config dir>/burrow/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectsDir, "projects-dir", "", "Projects directory (overrides config)")
}
