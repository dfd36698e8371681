package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list [PATTERN]",
	Short: "List projects",
	Long: `List prints every project below the projects directory, following symlinks.
PATTERN is a glob over project names; "**" crosses namespaces (e.g. "work/**").`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listJSON && listYAML {
			return errors.New("--json and --yaml are mutually exclusive")
		}

		var pattern string
		if len(args) == 1 {
			pattern = args[0]
		}

		service, err := openService(cmd)
		if err != nil {
			return err
		}

		projects, err := service.ListProjects(cmd.Context(), pattern)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case listJSON:
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(projects)
		case listYAML:
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(projects); err != nil {
				return err
			}
			return encoder.Close()
		}

		for _, p := range projects {
			fmt.Fprintln(out, p.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
}
