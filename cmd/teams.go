package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Prorickey/first/ftc"
)

var (
	teamsTeamNumber int
	teamsEventCode  string
	teamsState      string
)

// teamsCmd lists teams for the season
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams for the season",
	Long: `List teams registered for the season. Filter to a single team with
--team, or to the teams attending an event or registered in a state.
--team cannot be combined with --event or --state.`,
	RunE: runTeams,
}

func init() {
	teamsCmd.Flags().IntVar(&teamsTeamNumber, "team", 0, "team number to look up")
	teamsCmd.Flags().StringVar(&teamsEventCode, "event", "", "event code to list teams for")
	teamsCmd.Flags().StringVar(&teamsState, "state", "", "state to list teams for")
}

func runTeams(cmd *cobra.Command, args []string) error {
	raw, err := client.GetTeams(cmd.Context(), &ftc.TeamsOptions{
		TeamNumber: teamsTeamNumber,
		EventCode:  teamsEventCode,
		State:      teamsState,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}

var (
	eventsEventCode  string
	eventsTeamNumber int
)

// eventsCmd lists events for the season
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events for the season",
	Long: `List events in the season. Filter to a single event with --event or
to a team's events with --team; the two cannot be combined.`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsEventCode, "event", "", "event code to look up")
	eventsCmd.Flags().IntVar(&eventsTeamNumber, "team", 0, "team number to list events for")
}

func runEvents(cmd *cobra.Command, args []string) error {
	raw, err := client.GetEvents(cmd.Context(), &ftc.EventsOptions{
		EventCode:  eventsEventCode,
		TeamNumber: eventsTeamNumber,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}
