package main

import (
	"github.com/spf13/cobra"

	"github.com/dom/team-balancer/internal/domain"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the roster into two balanced teams",
	Long: `Split the roster into two teams.

Modes:
- balanced: best of many shuffled greedy splits
- random:   ratings get small random noise before each trial, for varied teams

An odd roster leaves one substitute on the weaker team, paired with the
closest-rated teammate to rotate with.`,
	RunE: runSplit,
}

var splitMode string

func init() {
	splitCmd.Flags().StringVarP(&splitMode, "mode", "m", "", "balance mode: balanced or random (default from BALANCE_MODE)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	services, players, err := loadServices()
	if err != nil {
		return err
	}

	result, err := services.Teams.GenerateTeams(cmd.Context(), players, domain.BalanceMode(splitMode))
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	printTeams(cmd.OutOrStdout(), result)
	return nil
}
