package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/burrow/internal/config"
)

type infoReport struct {
	Config     *config.Config `json:"config"`
	Service    any            `json:"service"`
	Repository any            `json:"repository,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration and store state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService(cmd)
		if err != nil {
			return err
		}

		report := infoReport{
			Config:  cfg,
			Service: service.State(),
		}
		if repo, ok := service.Repository().(introspection.Introspectable); ok {
			report.Repository = repo.State()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
