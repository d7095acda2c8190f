package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <start> <end>",
		Short: "Generate the schedule for a date range (YYYY-MM-DD, inclusive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			out, _ := cmd.Flags().GetString("out")
			publish, _ := cmd.Flags().GetBool("publish")

			app.Logger.Debug("generate command",
				zap.Bool("dry_run", dryRun),
				zap.String("out", out),
				zap.Bool("publish", publish))

			table, err := app.LeaveTable()
			if err != nil {
				return err
			}
			if missing := table.MissingDays(start, end); len(missing) > 0 {
				fmt.Printf("⚠️  The leave table has no data for %d day(s); nobody is available on them:\n", len(missing))
				for _, day := range missing {
					fmt.Printf("  - %s\n", day)
				}
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, table, app.Cfg, app.Logger, start, end, dryRun)
			if err != nil {
				return err
			}
			outcome := result.Outcome

			printSchedule(outcome.Schedule, outcome.Statistics)

			if len(outcome.UncoveredCells) > 0 {
				fmt.Printf("⚠️  %d shift(s) could not be covered:\n", len(outcome.UncoveredCells))
				for _, cell := range outcome.UncoveredCells {
					fmt.Printf("  ✗ %s %s\n", cell.Day, cell.Shift)
				}
				fmt.Println()
			}

			if len(outcome.ValidationWarnings) > 0 {
				fmt.Printf("⚠️  %d rule(s) relaxed to keep shifts covered:\n", len(outcome.ValidationWarnings))
				for _, w := range outcome.ValidationWarnings {
					fmt.Printf("  - %s\n", w)
				}
				fmt.Println()
			}

			if outcome.Success {
				fmt.Println("✓ All shifts covered without relaxing any rule")
			}

			if result.DryRun {
				fmt.Println("Dry run: schedule not saved")
			} else {
				fmt.Printf("✓ Schedule saved (run %s)\n", result.RunID)
			}

			if out != "" {
				if err := services.ExportSchedule(outcome.Schedule, outcome.Statistics, out, app.Logger); err != nil {
					return err
				}
				fmt.Printf("✓ Exported to %s\n", out)
			}

			if publish {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				tab, err := services.PublishSchedule(client, app.Cfg, outcome.Schedule, outcome.Statistics, app.Logger)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Published to tab %q\n", tab)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().String("out", "", "Also write the schedule to this .xlsx file")
	cmd.Flags().Bool("publish", false, "Also publish the schedule to the configured Google Sheet")

	return cmd
}

// ShowScheduleCmd creates the showSchedule command
func ShowScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showSchedule",
		Short: "Show the most recently generated schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			publish, _ := cmd.Flags().GetBool("publish")

			run, schedule, stats, err := services.LatestSchedule(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nRun %s, generated %s\n", run.ID, run.GeneratedAt)
			printSchedule(schedule, stats)

			if out != "" {
				if err := services.ExportSchedule(schedule, stats, out, app.Logger); err != nil {
					return err
				}
				fmt.Printf("✓ Exported to %s\n", out)
			}

			if publish {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				tab, err := services.PublishSchedule(client, app.Cfg, schedule, stats, app.Logger)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Published to tab %q\n", tab)
			}

			return nil
		},
	}

	cmd.Flags().String("out", "", "Write the schedule to this .xlsx file")
	cmd.Flags().Bool("publish", false, "Publish the schedule to the configured Google Sheet")

	return cmd
}
