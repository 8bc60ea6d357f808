package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var stepTurns int

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance a fixed number of turns and print the final state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sim, err := buildSimulation(cfg)
		if err != nil {
			return err
		}

		for i := 0; i < stepTurns; i++ {
			if err := sim.AdvanceTurn(); err != nil {
				return fmt.Errorf("turn %d: %w", sim.Turn, err)
			}
		}

		snap := sim.Snapshot()
		fmt.Printf("After %d turns: wealth %s, production %s, labor %s, avg satisfaction %.3f\n",
			snap.Turn,
			humanize.Comma(snap.Stats.TotalWealth),
			humanize.Comma(snap.Stats.TotalProduction),
			humanize.Comma(int64(snap.Stats.TotalLabor)),
			snap.Stats.AvgSatisfaction,
		)
		for _, n := range snap.Nations {
			fmt.Printf("  %-12s wealth %-12s production %s\n",
				n.Name, humanize.Comma(n.TotalWealth), humanize.Comma(n.TotalProduction))
		}
		fmt.Printf("  %d trades executed on the final turn\n", snap.Stats.TradesExecuted)
		return nil
	},
}

func init() {
	stepCmd.Flags().IntVarP(&stepTurns, "turns", "n", 10, "number of turns to advance")
}
