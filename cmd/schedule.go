package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Prorickey/first/ftc"
)

var (
	scheduleLevel string
	scheduleTeam  int
)

// scheduleCmd shows the match schedule for an event
var scheduleCmd = &cobra.Command{
	Use:   "schedule <eventCode>",
	Short: "Show the match schedule for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleLevel, "level", "", "tournament level (required)")
	scheduleCmd.Flags().IntVar(&scheduleTeam, "team", 0, "team number to show the schedule for")
	_ = scheduleCmd.MarkFlagRequired("level")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	raw, err := client.GetSchedule(cmd.Context(), args[0], &ftc.ScheduleOptions{
		TournamentLevel: scheduleLevel,
		TeamNumber:      scheduleTeam,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}

var (
	hybridStart int
	hybridEnd   int
)

// hybridCmd shows the schedule merged with played-match results
var hybridCmd = &cobra.Command{
	Use:   "hybrid <eventCode> <level>",
	Short: "Show the hybrid schedule (schedule plus results) for an event",
	Args:  cobra.ExactArgs(2),
	RunE:  runHybrid,
}

func init() {
	hybridCmd.Flags().IntVar(&hybridStart, "start", 0, "first match number")
	hybridCmd.Flags().IntVar(&hybridEnd, "end", 0, "last match number")
}

func runHybrid(cmd *cobra.Command, args []string) error {
	raw, err := client.GetHybridSchedule(cmd.Context(), args[0], args[1], &ftc.HybridScheduleOptions{
		Start: hybridStart,
		End:   hybridEnd,
	})
	if err != nil {
		return err
	}
	return printResult(raw)
}
