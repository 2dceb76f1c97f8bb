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

var (
	reportFrom string
	reportTo   string
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compose the periodic report for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := parseDateOrNow(reportTo)
		if err != nil {
			return err
		}
		var from time.Time
		if reportFrom == "" {
			from = to.AddDate(0, 0, -(service.DefaultReportDays - 1))
		} else {
			from, err = parseDateOrNow(reportFrom)
			if err != nil {
				return err
			}
		}

		return withService(func(_ *store.Store, svc *service.QueryService, _ *config.Config) error {
			report, err := svc.GetReport(from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reportJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			agg := report.Data.Range
			trend := report.Data.Trend
			fmt.Fprintf(out, "Report %s .. %s (%d days)\n", agg.StartDate, agg.EndDate, agg.TotalDays)
			fmt.Fprintf(out, "  Consumed: %.0f kcal over %d logged days (avg %.0f/logged day)\n",
				agg.TotalConsumed, agg.DaysWithFood, agg.AvgConsumedPerLoggedDay)
			fmt.Fprintf(out, "  Exercise: %.0f kcal over %d days\n", agg.TotalBurntExercise, agg.DaysWithExercise)
			fmt.Fprintf(out, "  Avg TDEE: %.0f kcal/day | Avg deficit: %.0f kcal/day\n", agg.AvgTDEE, agg.AvgDeficit)
			fmt.Fprintf(out, "  Water: %.0f glasses (avg %.1f/day)\n", agg.TotalWaterGlasses, agg.AvgWaterPerDay)
			fmt.Fprintf(out, "  Streak: %d (longest %d)\n", report.Data.Streaks.Current, report.Data.Streaks.Longest)
			fmt.Fprintf(out, "  Projection: %+.2f kg over %d days (observed %+.2f kg/week, %d days of data)\n",
				trend.ProjectedWeightChangeKg, trend.HorizonDays,
				trend.ObservedSlopeKgPerWeek, trend.ConfidenceWindowDays)
			fmt.Fprintf(out, "\n%s\n", report.Data.Narrative)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Range start YYYY-MM-DD (default 27 days before --to)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Range end YYYY-MM-DD (default today)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Emit the full payload as JSON")
}
