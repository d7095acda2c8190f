package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-rota/pkg/core/services"
	"github.com/jakechorley/shift-rota/pkg/leavetable"
	"github.com/jakechorley/shift-rota/pkg/report"
)

// AvailabilityCmd creates the availability command
func AvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "availability <start> <end>",
		Short: "Show who is available each day according to the leave table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			table, err := app.LeaveTable()
			if err != nil {
				return err
			}

			people, err := services.ListPeople(app.Ctx, app.Database, app.Logger, false)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(people))
			for _, p := range people {
				names = append(names, p.Name)
			}

			days := services.DescribeAvailability(table, names, start, end)

			fmt.Println()
			rows := [][]string{{"Data", "Dia da Semana", "Available", "Absent"}}
			for _, d := range days {
				if d.NoData {
					rows = append(rows, []string{report.FormatDate(d.Day), report.Weekday(d.Day), "(no data)", ""})
					continue
				}

				absent := make([]string, 0, len(d.Absent))
				for _, name := range names {
					code, ok := d.Absent[name]
					if !ok {
						continue
					}
					reason := code.Label()
					if code == leavetable.Present {
						reason = "not in leave table"
					}
					absent = append(absent, fmt.Sprintf("%s (%s)", name, reason))
				}

				rows = append(rows, []string{
					report.FormatDate(d.Day),
					report.Weekday(d.Day),
					strings.Join(d.Available, ", "),
					strings.Join(absent, ", "),
				})
			}
			printTable(rows)
			fmt.Println()

			return nil
		},
	}
}
