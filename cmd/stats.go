package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/learntrace/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-learner statistics from the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No learners in the database. Run 'learntrace seed' first.")
			return nil
		}

		fmt.Printf("%-14s %-10s %6s %11s %8s %13s %10s %6s %7s %10s\n",
			"Learner", "Name", "Plans", "Activities", "Records",
			"Interactions", "Resources", "Help", "Awards", "Mean score")
		fmt.Println(strings.Repeat("─", 102))

		for _, s := range stats {
			fmt.Printf("%-14s %-10s %6d %11d %8d %13d %10d %6d %7d %10.1f\n",
				s.LearnerID, s.DisplayName, s.Plans, s.Activities, s.Records,
				s.Interactions, s.Resources, s.HelpRequests, s.Achievements,
				s.MeanScore)
		}

		fmt.Printf("\n%d learners\n", len(stats))
		return nil
	},
}
