package slim

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slim/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log food, exercise, water, or weight",
}

var (
	logDate string
	logNote string
)

func addLogSubcommand(use, short, unit string, kind store.EventKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <" + unit + ">",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil || value < 0 {
				return fmt.Errorf("invalid %s %q (expected a non-negative number)", unit, args[0])
			}
			loggedAt, err := parseDateOrNow(logDate)
			if err != nil {
				return err
			}
			return withStore(func(st *store.Store) error {
				id, err := st.AddEvent(&store.Event{
					Kind:     kind,
					LoggedAt: loggedAt,
					Value:    value,
					Note:     logNote,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s event %d\n", kind, id)
				return nil
			})
		},
	}
	logCmd.AddCommand(cmd)
	return cmd
}

var logUndoKind string

var logUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Delete the most recent event of a kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := store.EventKind(logUndoKind)
		if !store.ValidKind(kind) {
			return fmt.Errorf("invalid --kind %q (food, exercise, water, or weight)", logUndoKind)
		}
		return withStore(func(st *store.Store) error {
			deleted, err := st.DeleteLastEvent(kind)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s events to delete\n", kind)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted last %s event\n", kind)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	addLogSubcommand("food", "Log calories consumed", "kcal", store.EventFood)
	addLogSubcommand("exercise", "Log calories burnt exercising", "kcal", store.EventExercise)
	addLogSubcommand("water", "Log glasses of water", "glasses", store.EventWater)
	addLogSubcommand("weight", "Log a body-weight sample", "kg", store.EventWeight)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logCmd.PersistentFlags().StringVar(&logNote, "note", "", "Optional note")

	logCmd.AddCommand(logUndoCmd)
	logUndoCmd.Flags().StringVar(&logUndoKind, "kind", "", "Event kind to undo")
}
