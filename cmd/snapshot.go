package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// snapshotConcurrency bounds the parallel API calls per snapshot
const snapshotConcurrency = 3

// snapshotCmd fetches an event's matches, rankings and alliances in one go
var snapshotCmd = &cobra.Command{
	Use:   "snapshot <eventCode>",
	Short: "Fetch matches, rankings and alliances for an event in one document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	eventCode := args[0]

	var (
		matches   json.RawMessage
		rankings  json.RawMessage
		alliances json.RawMessage
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(snapshotConcurrency)

	g.Go(func() error {
		var err error
		matches, err = client.GetMatches(ctx, eventCode, nil)
		return err
	})
	g.Go(func() error {
		var err error
		rankings, err = client.GetRankings(ctx, eventCode, nil)
		return err
	})
	g.Go(func() error {
		var err error
		alliances, err = client.GetAlliances(ctx, eventCode)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	combined, err := json.Marshal(struct {
		EventCode string          `json:"eventCode"`
		Matches   json.RawMessage `json:"matches"`
		Rankings  json.RawMessage `json:"rankings"`
		Alliances json.RawMessage `json:"alliances"`
	}{eventCode, matches, rankings, alliances})
	if err != nil {
		return err
	}

	return printResult(combined)
}

// alliancesCmd shows the playoff alliances for an event
var alliancesCmd = &cobra.Command{
	Use:   "alliances <eventCode>",
	Short: "Show the playoff alliances for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.GetAlliances(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}

// selectionsCmd shows the alliance selection process for an event
var selectionsCmd = &cobra.Command{
	Use:   "selections <eventCode>",
	Short: "Show the alliance selection details for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.GetAllianceSelections(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}
