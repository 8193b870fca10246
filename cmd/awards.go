package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Prorickey/first/ftc"
)

var (
	awardsEventCode  string
	awardsTeamNumber int
)

// awardsCmd shows awards won at an event or by a team
var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Show awards won at an event or by a team",
	Long: `Show awards won at an event (--event), by a team (--team), or by a
team at a specific event (both). At least one of the two is required.`,
	RunE: runAwards,
}

func init() {
	awardsCmd.Flags().StringVar(&awardsEventCode, "event", "", "event code")
	awardsCmd.Flags().IntVar(&awardsTeamNumber, "team", 0, "team number")
}

func runAwards(cmd *cobra.Command, args []string) error {
	raw, err := client.GetAwards(cmd.Context(), &ftc.AwardsOptions{
		EventCode:  awardsEventCode,
		TeamNumber: awardsTeamNumber,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}

// awardListCmd shows the award types defined for the season
var awardListCmd = &cobra.Command{
	Use:   "award-list",
	Short: "List the award types defined for the season",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.GetAwardListings(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}
