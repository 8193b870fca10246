package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Prorickey/first/ftc"
)

var (
	matchesLevel string
	matchesTeam  int
	matchesMatch int
	matchesStart int
	matchesEnd   int
)

// matchesCmd shows match results for an event
var matchesCmd = &cobra.Command{
	Use:   "matches <eventCode>",
	Short: "Show match results for an event",
	Long: `Show match results for an event. Narrow to one team with --team or to
one match with --match (requires --level), or to a match number range
with --start/--end (also requires --level).`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&matchesLevel, "level", "", "tournament level (e.g. qual, playoff)")
	matchesCmd.Flags().IntVar(&matchesTeam, "team", 0, "team number to show matches for")
	matchesCmd.Flags().IntVar(&matchesMatch, "match", 0, "single match number")
	matchesCmd.Flags().IntVar(&matchesStart, "start", 0, "first match number")
	matchesCmd.Flags().IntVar(&matchesEnd, "end", 0, "last match number")
}

func runMatches(cmd *cobra.Command, args []string) error {
	raw, err := client.GetMatches(cmd.Context(), args[0], &ftc.MatchesOptions{
		TournamentLevel: matchesLevel,
		TeamNumber:      matchesTeam,
		MatchNumber:     matchesMatch,
		Start:           matchesStart,
		End:             matchesEnd,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}

var (
	rankingsTeam int
	rankingsTop  int
)

// rankingsCmd shows event rankings
var rankingsCmd = &cobra.Command{
	Use:   "rankings <eventCode>",
	Short: "Show rankings for an event",
	Long: `Show the current rankings for an event. Narrow to one team with --team
or to the leading teams with --top; the two cannot be combined.`,
	Args: cobra.ExactArgs(1),
	RunE: runRankings,
}

func init() {
	rankingsCmd.Flags().IntVar(&rankingsTeam, "team", 0, "team number to show the ranking for")
	rankingsCmd.Flags().IntVar(&rankingsTop, "top", 0, "only show the top N teams")
}

func runRankings(cmd *cobra.Command, args []string) error {
	raw, err := client.GetRankings(cmd.Context(), args[0], &ftc.RankingsOptions{
		TeamNumber: rankingsTeam,
		Top:        rankingsTop,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}

var (
	scoresTeam  int
	scoresMatch int
	scoresStart int
	scoresEnd   int
)

// scoresCmd shows detailed match scores
var scoresCmd = &cobra.Command{
	Use:   "scores <eventCode> <level>",
	Short: "Show detailed match scores for an event and tournament level",
	Args:  cobra.ExactArgs(2),
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&scoresTeam, "team", 0, "team number to show scores for")
	scoresCmd.Flags().IntVar(&scoresMatch, "match", 0, "single match number")
	scoresCmd.Flags().IntVar(&scoresStart, "start", 0, "first match number")
	scoresCmd.Flags().IntVar(&scoresEnd, "end", 0, "last match number")
}

func runScores(cmd *cobra.Command, args []string) error {
	raw, err := client.GetScores(cmd.Context(), args[0], args[1], &ftc.ScoresOptions{
		TeamNumber:  scoresTeam,
		MatchNumber: scoresMatch,
		Start:       scoresStart,
		End:         scoresEnd,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}
