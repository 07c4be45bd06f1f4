package cmd

import (
	"fmt"

	"strava-insights/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [selection]",
	Short: "Print analyses to stdout",
	Long: `Print the chosen analyses as plain text, for piping or quick checks.

Selections: overview, stats, weekly, timeofday, records, gear, monthly,
comparison, or all (the default).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selection := "all"
		if len(args) == 1 {
			selection = args[0]
		}
		kinds, err := report.Dispatch(selection)
		if err != nil {
			return err
		}

		queries, err := loadActivities()
		if err != nil {
			return err
		}

		renderer := report.NewRenderer(queries, cfg.BarWidth)
		out := cmd.OutOrStdout()
		for i, k := range kinds {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, renderer.Render(k))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
