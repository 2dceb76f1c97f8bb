package slim

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slim/internal/config"
	"slim/internal/service"
	"slim/internal/store"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's energy balance, the current week, and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(_ *store.Store, svc *service.QueryService, _ *config.Config) error {
			data, err := svc.GetDashboardData(time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dashboardJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			t := data.Today
			fmt.Fprintf(out, "Today (%s)\n", t.Date)
			fmt.Fprintf(out, "  Consumed: %.0f kcal\n", t.CaloriesConsumed)
			fmt.Fprintf(out, "  Exercise: %.0f kcal\n", t.CaloriesBurntExercise)
			fmt.Fprintf(out, "  TDEE: %.0f kcal\n", t.TDEE)
			fmt.Fprintf(out, "  Net deficit: %.0f kcal\n", t.NetDeficit)
			fmt.Fprintf(out, "  Water: %.0f glasses\n", t.WaterGlasses)

			w := data.Week
			fmt.Fprintf(out, "Week of %s (%d days logged so far)\n", w.WeekStart, len(w.Days))
			fmt.Fprintf(out, "  Consumed: %.0f kcal | Exercise: %.0f kcal | Avg deficit: %.0f kcal/day\n",
				w.CaloriesConsumed, w.CaloriesBurntExercise, w.AvgDeficit)

			fmt.Fprintf(out, "Streak: %d (longest %d)\n", data.Streaks.Current, data.Streaks.Longest)

			if len(data.RecentWeights) > 0 {
				last := data.RecentWeights[len(data.RecentWeights)-1]
				fmt.Fprintf(out, "Last weight: %.1f kg (%s)\n", last.Kg, last.At.Format("2006-01-02"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Emit the raw payload as JSON")
}
