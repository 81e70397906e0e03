package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/progress"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

func newOutcomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "outcome OUTCOME_ID",
		Short: "Show an outcome's quarterly status and update history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, updates, err := openStores(cmd)
			if err != nil {
				return err
			}
			service := progress.NewService(goals, updates)

			history, err := service.OutcomeHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			outcome := history.Outcome
			fmt.Printf("%s  (%s)\n", outcome.ID, outcome.MetricType)
			fmt.Printf("  %s\n", outcome.Description)
			fmt.Printf("  Owner: %s\n", outcome.OwnerID)
			if outcome.TargetAnnual != nil {
				fmt.Printf("  Annual target: %s\n", outcome.TargetAnnual)
			}

			fmt.Println()
			for _, q := range whygo.AllQuarters {
				printQuarter(q, outcome.TargetFor(q), outcome.ActualFor(q), outcome.StatusFor(q))
			}

			if len(history.Updates) == 0 {
				fmt.Println("\nNo progress updates recorded.")
				return nil
			}

			fmt.Printf("\nHistory (%d updates):\n", len(history.Updates))
			for _, u := range history.Updates {
				line := fmt.Sprintf("  %s  %s  actual=%s", u.RecordedAt, u.Quarter, u.ActualValue)
				if u.Status != nil {
					line += fmt.Sprintf("  [%s]", *u.Status)
				}
				line += "  by " + u.RecordedBy
				fmt.Println(line)
				if u.Notes != nil {
					fmt.Printf("      notes: %s\n", *u.Notes)
				}
				if u.Blocker != nil {
					fmt.Printf("      blocker: %s\n", *u.Blocker)
				}
			}
			return nil
		},
	}
}

func printQuarter(q whygo.Quarter, target, actual *whygo.Value, status whygo.Status) {
	marker := " "
	if status != whygo.StatusNone {
		marker = string(status)
	}
	fmt.Printf("  %s [%s]  target=%-12s actual=%s\n", q, marker, orDash(target), orDash(actual))
}

func orDash(v *whygo.Value) string {
	if v == nil {
		return "-"
	}
	return v.String()
}
