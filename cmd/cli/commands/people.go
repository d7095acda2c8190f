package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/services"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// AddPersonCmd creates the addPerson command
func AddPersonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addPerson <name>",
		Short: "Add a person to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftFlag, _ := cmd.Flags().GetString("shift")
			eligibility, err := model.ParseEligibility(shiftFlag)
			if err != nil {
				return err
			}

			var quota *config.QuotaConfig
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				q := app.Cfg.Quota()
				if cmd.Flags().Changed("min") {
					q.Min, _ = cmd.Flags().GetFloat64("min")
				}
				if cmd.Flags().Changed("max") {
					q.Max, _ = cmd.Flags().GetFloat64("max")
				}
				quota = &q
			}

			person, err := services.AddPerson(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], eligibility, quota)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Added %s\n\n", describePerson(*person))
			return nil
		},
	}

	cmd.Flags().String("shift", string(model.EligibleBoth), "Eligible shifts: Morning, Afternoon or Both")
	cmd.Flags().Float64("min", model.DefaultQuotaMin, "Minimum quota in percent of days")
	cmd.Flags().Float64("max", model.DefaultQuotaMax, "Maximum quota in percent of days")

	return cmd
}

// EditPersonCmd creates the editPerson command
func EditPersonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editPerson <name>",
		Short: "Rename a person or change their eligibility or quota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes services.PersonChanges

			if cmd.Flags().Changed("rename") {
				name, _ := cmd.Flags().GetString("rename")
				changes.Name = &name
			}
			if cmd.Flags().Changed("shift") {
				shiftFlag, _ := cmd.Flags().GetString("shift")
				eligibility, err := model.ParseEligibility(shiftFlag)
				if err != nil {
					return err
				}
				changes.Eligibility = &eligibility
			}
			if cmd.Flags().Changed("min") {
				v, _ := cmd.Flags().GetFloat64("min")
				changes.QuotaMin = &v
			}
			if cmd.Flags().Changed("max") {
				v, _ := cmd.Flags().GetFloat64("max")
				changes.QuotaMax = &v
			}

			person, err := services.EditPerson(app.Ctx, app.Database, app.Logger, args[0], changes)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Updated %s\n\n", describePerson(*person))
			return nil
		},
	}

	cmd.Flags().String("rename", "", "New name")
	cmd.Flags().String("shift", "", "Eligible shifts: Morning, Afternoon or Both")
	cmd.Flags().Float64("min", 0, "Minimum quota in percent of days")
	cmd.Flags().Float64("max", 0, "Maximum quota in percent of days")

	return cmd
}

// TogglePersonCmd creates the togglePerson command
func TogglePersonCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "togglePerson <name>",
		Short: "Activate or deactivate a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			person, err := services.TogglePersonActive(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			state := "inactive"
			if person.Active {
				state = "active"
			}
			fmt.Printf("\n✓ %s is now %s\n\n", person.Name, state)
			return nil
		},
	}
}

// RemovePersonCmd creates the removePerson command
func RemovePersonCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removePerson <name>",
		Short: "Remove a person and their fixed shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemovePerson(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Removed %s\n\n", args[0])
			return nil
		},
	}
}

// ListPeopleCmd creates the listPeople command
func ListPeopleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listPeople",
		Short: "List the people on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			people, err := services.ListPeople(app.Ctx, app.Database, app.Logger, all)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d people:\n\n", len(people))
			rows := [][]string{{"Name", "Shifts", "Quota", "Active"}}
			for _, p := range people {
				rows = append(rows, []string{
					p.Name,
					p.Eligibility,
					fmt.Sprintf("%s-%s%%", formatFloat(p.QuotaMin), formatFloat(p.QuotaMax)),
					strconv.FormatBool(p.Active),
				})
			}
			printTable(rows)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include inactive people")

	return cmd
}

// SyncPeopleCmd creates the syncPeople command
func SyncPeopleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "syncPeople",
		Short: "Add people listed in the leave table who are not on the roster yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.LeaveTable()
			if err != nil {
				return err
			}

			added, err := services.SyncPeople(app.Ctx, app.Database, app.Cfg, app.Logger, table.People())
			if err != nil {
				return err
			}

			if len(added) == 0 {
				fmt.Println("\nEveryone in the leave table is already on the roster.")
				return nil
			}

			fmt.Printf("\n✓ Added %d people:\n", len(added))
			for _, p := range added {
				fmt.Printf("  ✓ %s\n", describePerson(p))
			}
			fmt.Println()

			return nil
		},
	}
}

func describePerson(p db.Person) string {
	return fmt.Sprintf("%s (%s, quota %s-%s%%)", p.Name, p.Eligibility, formatFloat(p.QuotaMin), formatFloat(p.QuotaMax))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
