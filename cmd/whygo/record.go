package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/progress"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

func newRecordCommand() *cobra.Command {
	var person, notes, blocker string

	cmd := &cobra.Command{
		Use:   "record OUTCOME_ID QUARTER ACTUAL",
		Short: "Record an actual value for an outcome in a quarter",
		Long: `Records a progress update: sets the quarter's actual on the outcome,
derives the pace status against the target, and appends an entry to the
progress log.

Examples:
  whygo record cg_1_o1 Q1 5 --person person_ben_kusin --notes "Signed 5 clients"
  whygo record cg_4_o1 Q1 MVP --person person_niels
  whygo record cg_2_o1 Q1 35 --person person_luke_peterson --blocker "Workflow delays"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quarter, err := whygo.ParseQuarter(args[1])
			if err != nil {
				return err
			}

			goals, updates, err := openStores(cmd)
			if err != nil {
				return err
			}
			service := progress.NewService(goals, updates)

			in := progress.RecordActualInput{
				OutcomeID:  args[0],
				Quarter:    quarter,
				Actual:     whygo.ParseActual(args[2]),
				RecordedBy: person,
			}
			if notes != "" {
				in.Notes = &notes
			}
			if blocker != "" {
				in.Blocker = &blocker
			}

			outcome, err := service.RecordActual(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Progress recorded for %s %s\n", outcome.ID, quarter)
			fmt.Printf("  Target: %s\n", orDash(outcome.TargetFor(quarter)))
			fmt.Printf("  Actual: %s\n", orDash(outcome.ActualFor(quarter)))
			fmt.Printf("  Status: %s\n", describeStatus(outcome.StatusFor(quarter)))
			return nil
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "person id recording the update")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes about the progress")
	cmd.Flags().StringVar(&blocker, "blocker", "", "optional blocker description")
	cmd.MarkFlagRequired("person")

	return cmd
}

func describeStatus(s whygo.Status) string {
	switch s {
	case whygo.StatusOnPace:
		return "[+] on pace"
	case whygo.StatusSlightlyOff:
		return "[~] slightly off pace"
	case whygo.StatusOffPace:
		return "[-] off pace"
	}
	return "not derived (missing target or actual)"
}
