package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assumeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove NAME",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a project",
	Long: `Remove deletes a project file after confirmation. Namespace directories
left empty by the removal are deleted too; the projects directory itself is
always kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService(cmd)
		if err != nil {
			return err
		}

		name := args[0]
		removed, err := service.RemoveProject(cmd.Context(), name, assumeYes)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
