package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/services"
)

// FixShiftCmd creates the fixShift command
func FixShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fixShift <date> <Morning|Afternoon> <name>",
		Short: "Pin a person to a shift; generate never overrides it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, shift, err := parseCell(args[0], args[1])
			if err != nil {
				return err
			}

			fa, err := services.AddFixedAssignment(app.Ctx, app.Database, app.Logger, day, shift, args[2])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s fixed on %s %s\n\n", fa.PersonName, fa.Date, fa.Shift)
			return nil
		},
	}
}

// UnfixShiftCmd creates the unfixShift command
func UnfixShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unfixShift <date> <Morning|Afternoon>",
		Short: "Remove a fixed shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, shift, err := parseCell(args[0], args[1])
			if err != nil {
				return err
			}

			if err := services.RemoveFixedAssignment(app.Ctx, app.Database, app.Logger, day, shift); err != nil {
				return err
			}

			fmt.Printf("\n✓ %s %s is no longer fixed\n\n", day, shift)
			return nil
		},
	}
}

// ListFixedCmd creates the listFixed command
func ListFixedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listFixed <start> <end>",
		Short: "List fixed shifts in a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			assignments, err := services.ListFixedAssignments(app.Ctx, app.Database, app.Logger, start, end)
			if err != nil {
				return err
			}

			// Recurring rules are expanded too, so the listing matches what generate will seed
			recurring, err := services.ExpandFixedRules(app.Cfg.FixedRules, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d fixed shifts (%d from recurring rules):\n\n", len(assignments)+len(recurring), len(recurring))
			rows := [][]string{{"Date", "Shift", "Person", "Source"}}
			for _, fa := range assignments {
				rows = append(rows, []string{fa.Date, fa.Shift, fa.PersonName, "stored"})
			}
			for _, fa := range recurring {
				rows = append(rows, []string{fa.Day.String(), string(fa.Shift), fa.PersonName, "rule"})
			}
			printTable(rows)
			fmt.Println()

			return nil
		},
	}
}

func parseCell(dateArg, shiftArg string) (model.Day, model.Shift, error) {
	day, err := model.ParseDay(dateArg)
	if err != nil {
		return model.Day{}, "", err
	}
	shift, err := model.ParseShift(shiftArg)
	if err != nil {
		return model.Day{}, "", err
	}
	return day, shift, nil
}
