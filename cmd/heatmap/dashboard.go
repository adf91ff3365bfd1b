package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-heatmap/internal/adapters/terminal"
)

func addShow(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Render the heatmap for the last twelve months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := s.app.Dashboards.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderHeatmap(d))
			return nil
		},
	})
}

func addStreaks(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "streaks",
		Short: "Print the current and longest clean streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.app.Dashboards.Streaks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderStreaks(st))
			return nil
		},
	})
}
