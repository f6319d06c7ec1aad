package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vocascope/vocascope/pkg/vocab"
)

func newDiffCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "diff <before.json> <after.json>",
		Short: "Compare two ranking snapshots",
		Long: `Loads two exported rankings and reports new vocabularies, dropped
vocabularies, and connectivity score movement.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRankingDiff(args[0], args[1], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the delta as JSON")

	return cmd
}

func runRankingDiff(beforePath, afterPath string, jsonOut bool) error {
	before, err := vocab.LoadRanking(beforePath)
	if err != nil {
		return fmt.Errorf("loading before ranking: %w", err)
	}
	after, err := vocab.LoadRanking(afterPath)
	if err != nil {
		return fmt.Errorf("loading after ranking: %w", err)
	}

	delta := vocab.ComputeDelta(before, after)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(delta)
	}

	printRankingDelta(before, after, delta)
	return nil
}

func printRankingDelta(before, after *vocab.Ranking, delta *vocab.RankingDelta) {
	fmt.Printf("Delta: %q (%s) -> %q (%s)\n",
		before.Term, shortID(before.ID), after.Term, shortID(after.ID))
	fmt.Printf("  Added:   %d\n", delta.Stats.AddedCount)
	fmt.Printf("  Removed: %d\n", delta.Stats.RemovedCount)
	fmt.Printf("  Changed: %d\n", delta.Stats.ChangedCount)

	if len(delta.Added) > 0 {
		fmt.Println("\nNew vocabularies:")
		for _, e := range delta.Added {
			fmt.Printf("  + %s (%.2f)\n", entryLabel(e), e.ConnectivityScore)
		}
	}

	if len(delta.Removed) > 0 {
		fmt.Println("\nDropped vocabularies:")
		for _, e := range delta.Removed {
			fmt.Printf("  - %s (%.2f)\n", entryLabel(e), e.ConnectivityScore)
		}
	}

	if len(delta.ScoreChanges) > 0 {
		fmt.Println("\nScore changes:")
		for _, c := range delta.ScoreChanges {
			label := c.Title
			if label == "" {
				label = c.URI
			}
			fmt.Printf("  ~ %s: %.2f -> %.2f\n", label, c.Before, c.After)
		}
	}
}

func entryLabel(e vocab.RankedEntry) string {
	if e.Prefix != "" {
		return e.Prefix
	}
	if e.URI != "" {
		return e.URI
	}
	return "(unidentified)"
}

func shortID(id string) string {
	return id[:minInt(8, len(id))]
}
