package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addToggle(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "toggle <habit>",
		Short: "Mark or unmark a habit as done today",
		Example: `
heatmap toggle Alcohol
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done, err := s.app.Entries.ToggleToday(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(done) == 0 {
				fmt.Fprintln(out, "Today is clean.")
				return nil
			}
			fmt.Fprintf(out, "Done today: %s\n", strings.Join(done, ", "))
			return nil
		},
	})
}

func addDay(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show the habits and note recorded for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := s.app.Entries.Day(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, day.Date)
			if !day.Trackable {
				fmt.Fprintln(out, "  not tracked")
			}
			if len(day.HabitsDone) == 0 {
				fmt.Fprintln(out, "  clean")
			} else {
				fmt.Fprintf(out, "  done: %s\n", strings.Join(day.HabitsDone, ", "))
			}
			if day.Note != "" {
				fmt.Fprintf(out, "  note: %s\n", day.Note)
			}
			return nil
		},
	})
}

func addNote(topLevel *cobra.Command, s *session) {
	var text string

	cmd := &cobra.Command{
		Use:   "note <YYYY-MM-DD> <text>",
		Short: "Write the journal note for a day; empty text removes it",
		Example: `
heatmap note 2024-01-09 stressful day at work
heatmap note 2024-01-09
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a date")
			}
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := s.app.Entries.SaveNote(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}
			if day.Note == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Note for %s removed.\n", day.Date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note for %s saved.\n", day.Date)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addStart(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "start <YYYY-MM-DD>",
		Short: "Set the first tracked day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := s.app.State.SetStartDate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tracking starts on %s.\n", snap.Settings.StartDate)
			return nil
		},
	})
}

func addClear(topLevel *cobra.Command, s *session) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every habit, entry and note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			snap, err := s.app.State.ClearAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All data cleared. Tracking starts on %s.\n", snap.Settings.StartDate)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	topLevel.AddCommand(cmd)
}
