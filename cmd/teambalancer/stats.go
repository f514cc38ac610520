package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rating statistics for the roster",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	services, players, err := loadServices()
	if err != nil {
		return err
	}

	stats := services.Teams.Stats(players)
	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), stats)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Players: %d\nTotal:   %d\nAverage: %d\nMin:     %d\nMax:     %d\n",
		stats.PlayerCount, stats.TotalRating, stats.AverageRating, stats.MinRating, stats.MaxRating)
	return nil
}
