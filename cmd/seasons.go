package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Prorickey/first/season"
)

// seasonCmd shows the API's summary for the configured season
var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Show the season summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.GetSeasonSummary(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}

// seasonsCmd lists the seasons this client knows about. Purely local,
// no API call.
var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List supported seasons",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range season.All() {
			marker := " "
			if s == season.Latest() {
				marker = "*"
			}
			fmt.Printf("%s %d  %s\n", marker, s.Year(), s)
		}
	},
}

// indexCmd shows the API index document
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Show the API index document",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.GetIndex(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}
