package slim

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "slim",
	Short: "slim tracks weight, food, exercise, and water from your terminal",
	Long:  "slim is a local-first weight-management tracker: log raw events and get daily energy balance, weekly rollups, streaks, and a projected weight trajectory.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
