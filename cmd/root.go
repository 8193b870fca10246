package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Prorickey/first/config"
	"github.com/Prorickey/first/filter"
	"github.com/Prorickey/first/ftc"
	"github.com/Prorickey/first/season"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *ftc.Client

	// Command flags
	seasonYear int
	filterExpr string
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ftc",
	Short: "Query the FIRST Tech Challenge Events API",
	Long: `ftc is a CLI for the FIRST Tech Challenge Events API. It can look up
teams, events, match results, rankings, scores, schedules, awards and
playoff alliances for any supported season.

Credentials come from a config file or the FTC_USERNAME and FTC_KEY
environment variables.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().IntVar(&seasonYear, "season", 0, "season year to query (default from config)")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to returned rows")

	// Add subcommands
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(hybridCmd)
	rootCmd.AddCommand(awardsCmd)
	rootCmd.AddCommand(awardListCmd)
	rootCmd.AddCommand(alliancesCmd)
	rootCmd.AddCommand(selectionsCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Commands that never touch the API skip client setup
	if cmd == seasonsCmd || cmd == versionCmd {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override season from command line if specified
	if cmd.Flags().Changed("season") {
		cfg.FTC.Season = seasonYear
	}

	s, err := season.FromYear(cfg.FTC.Season)
	if err != nil {
		return err
	}

	token, err := ftc.CreateToken(cfg.FTC.Username, cfg.FTC.Key)
	if err != nil {
		return err
	}

	client, err = ftc.NewClient(token,
		ftc.WithSeason(s),
		ftc.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create FTC client: %w", err)
	}

	logger.Debug().
		Int("season", s.Year()).
		Str("game", s.String()).
		Msg("FTC client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; never color when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// renderResult applies a filter expression, if any, and indents the
// response for display. Bodies that are not valid JSON come back verbatim.
func renderResult(raw json.RawMessage, expression string) (string, error) {
	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return "", err
		}
		raw, err = f.Apply(raw)
		if err != nil {
			return "", err
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw), nil
	}
	return out.String(), nil
}

// printResult applies the --filter expression, if any, and pretty-prints
// the response to stdout.
func printResult(raw json.RawMessage) error {
	out, err := renderResult(raw, filterExpr)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ftc %s (built %s)\n", version, buildTime)
	},
}
