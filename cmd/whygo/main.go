package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/progress"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

func main() {
	config.Init()

	root := &cobra.Command{
		Use:          "whygo",
		Short:        "Track WhyGO goals, outcomes and quarterly progress",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("data", "data", "directory holding the WhyGO JSON files")

	root.AddCommand(newRecordCommand())
	root.AddCommand(newOutcomeCommand())
	root.AddCommand(newDashboardCommand())
	root.AddCommand(newServeCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStores loads both JSON stores from the --data directory.
func openStores(cmd *cobra.Command) (whygo.Repository, progress.Repository, error) {
	dataDir, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, nil, err
	}

	goals, err := whygo.NewJSONRepository(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load whygo data: %w", err)
	}
	updates, err := progress.NewJSONRepository(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load progress data: %w", err)
	}
	return goals, updates, nil
}
