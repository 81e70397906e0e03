package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

func newDashboardCommand() *cobra.Command {
	var departmentID string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the company dashboard, or a department's with --department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, _, err := openStores(cmd)
			if err != nil {
				return err
			}
			service := whygo.NewService(goals)

			if departmentID != "" {
				dash := service.DepartmentDashboard(departmentID)
				fmt.Printf("Department %s — %d goals\n\n", dash.DepartmentID, len(dash.Goals))
				for _, g := range dash.Goals {
					printGoal(g.ID, g.Goal, string(g.Status), g.Outcomes)
				}
				printSummary(dash.Summary)
				return nil
			}

			dash := service.CompanyDashboard()
			fmt.Printf("Company WhyGOs — %d goals\n\n", len(dash.Goals))
			for _, g := range dash.Goals {
				printGoal(g.ID, g.Goal, string(g.Status), g.Outcomes)
			}
			printSummary(dash.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&departmentID, "department", "", "department id to show instead of the company view")

	return cmd
}

func printGoal(id, goal, status string, outcomes []whygo.Outcome) {
	fmt.Printf("%s [%s]\n  %s\n", id, status, goal)
	for _, o := range outcomes {
		printQuarterLine(o)
	}
	fmt.Println()
}

func printQuarterLine(o whygo.Outcome) {
	fmt.Printf("  - %s %s\n", o.ID, o.Description)
	printQuarter(whygo.Q1, o.TargetFor(whygo.Q1), o.ActualFor(whygo.Q1), o.StatusFor(whygo.Q1))
}

func printSummary(s whygo.DashboardSummary) {
	fmt.Printf("Summary: %d goals, %d outcomes, %d tracked in Q1\n",
		s.TotalGoals, s.TotalOutcomes, s.OutcomesTrackedQ1)
	fmt.Printf("  Q1: %d on pace, %d slightly off, %d off pace, %d not recorded\n",
		s.Q1Status.OnPace, s.Q1Status.SlightlyOff, s.Q1Status.OffPace, s.Q1Status.NotRecorded)
}
