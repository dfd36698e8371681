package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/burrow/pkg/core"
)

var editorCommand string

var editCmd = &cobra.Command{
	Use:   "edit NAME",
	Short: "Open a project in the editor, creating it if needed",
	Long: `Edit creates <projects-dir>/NAME.yml with a starter layout when it does not
exist yet (including any namespace directories) and opens it in the editor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], core.EditOptions{})
	},
}

var newCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create a project and open it in the editor",
	Long:  `New behaves like edit but leaves an existing project alone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], core.EditOptions{CreateOnly: true})
	},
}

func runEdit(cmd *cobra.Command, name string, opts core.EditOptions) error {
	service, err := openService(cmd)
	if err != nil {
		return err
	}

	command := cfg.Editor
	if editorCommand != "" {
		command = editorCommand
	}

	return service.EditProject(cmd.Context(), name, command, opts)
}

func init() {
	for _, c := range []*cobra.Command{editCmd, newCmd} {
		c.Flags().StringVarP(&editorCommand, "editor", "e", "", "Editor command (overrides config and $EDITOR)")
		rootCmd.AddCommand(c)
	}
}
