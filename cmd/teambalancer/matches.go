package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Split the roster into several simultaneous balanced matches",
	RunE:  runMatches,
}

var matchCount int

func init() {
	matchesCmd.Flags().IntVarP(&matchCount, "count", "n", 2, "number of simultaneous matches")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	services, players, err := loadServices()
	if err != nil {
		return err
	}

	matches, err := services.Teams.GenerateMatches(cmd.Context(), players, matchCount)
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), matches)
	}
	for i, m := range matches {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printTeams(cmd.OutOrStdout(), m)
	}
	return nil
}
