package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

func addHabits(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:     "habits",
		Aliases: []string{"habit"},
		Short:   "Manage the habits to avoid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits with their weights",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := s.app.Habits.List(cmd.Context())
			if err != nil {
				return err
			}
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("NAME", "WEIGHT", "ID")
			for _, h := range habits {
				tbl.AddRow(h.Name, h.Weight, h.ID)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit with weight 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := s.app.Habits.Add(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", h.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <name|id>",
		Aliases: []string{"delete"},
		Short:   "Delete a habit; past days keep its name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := s.resolveHabit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := s.app.Habits.Delete(cmd.Context(), h.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", h.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "weight <name|id> <weight>",
		Short: "Set how much a habit counts towards a day's intensity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("weight must be a number: %q", args[1])
			}
			h, err := s.resolveHabit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			updated, err := s.app.Habits.UpdateWeight(cmd.Context(), h.ID, weight)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now weighs %d.\n", updated.Name, updated.Weight)
			return nil
		},
	})

	topLevel.AddCommand(cmd)
}

// resolveHabit matches by name first, then by id.
func (s *session) resolveHabit(ctx context.Context, ref string) (domain.Habit, error) {
	habits, err := s.app.Habits.List(ctx)
	if err != nil {
		return domain.Habit{}, err
	}
	for _, h := range habits {
		if h.Name == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	return domain.Habit{}, fmt.Errorf("%w: %q", domain.ErrHabitNotFound, ref)
}
