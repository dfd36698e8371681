package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/burrow/pkg/adapters/lifecycle"
	"github.com/aretw0/burrow/pkg/core"
)

var (
	watchJSON  bool
	watchTypes []string
)

var watchCmd = &cobra.Command{
	Use:   "watch [PATTERN]",
	Short: "Print project changes as they happen",
	Long: `Watch streams create, modify and delete events for projects until interrupted.
Use --type (repeatable) to keep only some of them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pattern string
		if len(args) == 1 {
			pattern = args[0]
		}

		types := make([]core.EventType, 0, len(watchTypes))
		for _, raw := range watchTypes {
			t, err := core.ParseEventType(raw)
			if err != nil {
				return err
			}
			types = append(types, t)
		}

		service, err := openService(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		source := lifecycle.NewSource(service, pattern, lifecycle.WithTypes(types...))
		if err := source.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		encoder := json.NewEncoder(out)
		for event := range source.Events() {
			if watchJSON {
				if err := encoder.Encode(event); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintln(out, event.String())
		}

		if err := ctx.Err(); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Output one JSON object per event")
	watchCmd.Flags().StringSliceVarP(&watchTypes, "type", "t", nil, "Only report these event types (create, modify, delete)")
}
