package ftc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// TeamsOptions filters GetTeams. TeamNumber cannot be combined with
// EventCode or State.
type TeamsOptions struct {
	TeamNumber int
	EventCode  string
	State      string
}

func (o *TeamsOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.TeamNumber != 0 && (o.EventCode != "" || o.State != "") {
		return &ConflictingOptionsError{
			Option:    "teamNumber",
			Conflicts: []string{"eventCode", "state"},
		}
	}
	return nil
}

// GetTeams lists teams for the season, optionally filtered to a single
// team, an event, or a state.
func (c *Client) GetTeams(ctx context.Context, opts *TeamsOptions) (json.RawMessage, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	q := &query{}
	if opts != nil {
		q.SetInt("teamNumber", opts.TeamNumber)
		q.Set("eventCode", opts.EventCode)
		q.Set("state", opts.State)
	}
	return c.get(ctx, fmt.Sprintf("/%d/teams", c.season), q)
}

// EventsOptions filters GetEvents. EventCode cannot be combined with
// TeamNumber.
type EventsOptions struct {
	EventCode  string
	TeamNumber int
}

func (o *EventsOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.EventCode != "" && o.TeamNumber != 0 {
		return &ConflictingOptionsError{
			Option:    "eventCode",
			Conflicts: []string{"teamNumber"},
		}
	}
	return nil
}

// GetEvents lists events for the season, optionally filtered to a single
// event or to a team's events.
func (c *Client) GetEvents(ctx context.Context, opts *EventsOptions) (json.RawMessage, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	q := &query{}
	if opts != nil {
		q.Set("eventCode", opts.EventCode)
		q.SetInt("teamNumber", opts.TeamNumber)
	}
	return c.get(ctx, fmt.Sprintf("/%d/events", c.season), q)
}

// MatchesOptions filters GetMatches. TeamNumber cannot be combined with
// MatchNumber, MatchNumber cannot be combined with Start or End, and
// MatchNumber, Start and End all require TournamentLevel.
type MatchesOptions struct {
	TournamentLevel string
	TeamNumber      int
	MatchNumber     int
	Start           int
	End             int
}

func (o *MatchesOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.TeamNumber != 0 && o.MatchNumber != 0 {
		return &ConflictingOptionsError{
			Option:    "teamNumber",
			Conflicts: []string{"matchNumber"},
		}
	}
	if o.MatchNumber != 0 && (o.Start != 0 || o.End != 0) {
		return &ConflictingOptionsError{
			Option:    "matchNumber",
			Conflicts: []string{"start", "end"},
		}
	}
	if o.TournamentLevel == "" {
		switch {
		case o.MatchNumber != 0:
			return &MissingDependencyError{Option: "matchNumber", Requires: "tournamentLevel"}
		case o.Start != 0:
			return &MissingDependencyError{Option: "start", Requires: "tournamentLevel"}
		case o.End != 0:
			return &MissingDependencyError{Option: "end", Requires: "tournamentLevel"}
		}
	}
	return nil
}

// GetMatches returns match results for an event.
func (c *Client) GetMatches(ctx context.Context, eventCode string, opts *MatchesOptions) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	q := &query{}
	if opts != nil {
		q.Set("tournamentLevel", opts.TournamentLevel)
		q.SetInt("teamNumber", opts.TeamNumber)
		q.SetInt("matchNumber", opts.MatchNumber)
		q.SetInt("start", opts.Start)
		q.SetInt("end", opts.End)
	}
	return c.get(ctx, fmt.Sprintf("/%d/matches/%s", c.season, url.PathEscape(eventCode)), q)
}

// RankingsOptions filters GetRankings. TeamNumber cannot be combined
// with Top.
type RankingsOptions struct {
	TeamNumber int
	Top        int
}

func (o *RankingsOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.TeamNumber != 0 && o.Top != 0 {
		return &ConflictingOptionsError{
			Option:    "teamNumber",
			Conflicts: []string{"top"},
		}
	}
	return nil
}

// GetRankings returns event rankings, optionally for one team or the
// top N teams.
func (c *Client) GetRankings(ctx context.Context, eventCode string, opts *RankingsOptions) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	q := &query{}
	if opts != nil {
		q.SetInt("teamNumber", opts.TeamNumber)
		q.SetInt("top", opts.Top)
	}
	return c.get(ctx, fmt.Sprintf("/%d/rankings/%s", c.season, url.PathEscape(eventCode)), q)
}

// GetIndex returns the API index document for the configured version.
func (c *Client) GetIndex(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "", nil)
}

// GetSeasonSummary returns the season overview.
func (c *Client) GetSeasonSummary(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/%d", c.season), nil)
}

// GetAwardListings returns the award types defined for the season.
func (c *Client) GetAwardListings(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/%d/awards/list", c.season), nil)
}

// AwardsOptions selects awards by event, by team, or both. At least one
// must be set; both values become path segments, never query parameters.
type AwardsOptions struct {
	EventCode  string
	TeamNumber int
}

// GetAwards returns awards won at an event, by a team, or by a team at
// an event.
func (c *Client) GetAwards(ctx context.Context, opts *AwardsOptions) (json.RawMessage, error) {
	if opts == nil || (opts.EventCode == "" && opts.TeamNumber == 0) {
		return nil, &MissingAnyOfError{Options: []string{"eventCode", "teamNumber"}}
	}

	path := fmt.Sprintf("/%d/awards", c.season)
	switch {
	case opts.EventCode != "" && opts.TeamNumber != 0:
		path += fmt.Sprintf("/%s/%d", url.PathEscape(opts.EventCode), opts.TeamNumber)
	case opts.EventCode != "":
		path += "/" + url.PathEscape(opts.EventCode)
	default:
		path += fmt.Sprintf("/%d", opts.TeamNumber)
	}

	return c.get(ctx, path, nil)
}

// GetAlliances returns the playoff alliances for an event.
func (c *Client) GetAlliances(ctx context.Context, eventCode string) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	return c.get(ctx, fmt.Sprintf("/%d/alliances/%s", c.season, url.PathEscape(eventCode)), nil)
}

// GetAllianceSelections returns the alliance selection process details
// for an event.
func (c *Client) GetAllianceSelections(ctx context.Context, eventCode string) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	return c.get(ctx, fmt.Sprintf("/%d/alliances/%s/selection", c.season, url.PathEscape(eventCode)), nil)
}

// ScoresOptions filters GetScores. TeamNumber cannot be combined with
// MatchNumber, and MatchNumber cannot be combined with Start or End.
type ScoresOptions struct {
	TeamNumber  int
	MatchNumber int
	Start       int
	End         int
}

func (o *ScoresOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.TeamNumber != 0 && o.MatchNumber != 0 {
		return &ConflictingOptionsError{
			Option:    "teamNumber",
			Conflicts: []string{"matchNumber"},
		}
	}
	if o.MatchNumber != 0 && (o.Start != 0 || o.End != 0) {
		return &ConflictingOptionsError{
			Option:    "matchNumber",
			Conflicts: []string{"start", "end"},
		}
	}
	return nil
}

// GetScores returns detailed match scores for one tournament level of
// an event.
func (c *Client) GetScores(ctx context.Context, eventCode, tournamentLevel string, opts *ScoresOptions) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	if tournamentLevel == "" {
		return nil, &MissingArgumentError{Name: "tournamentLevel"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	q := &query{}
	if opts != nil {
		q.SetInt("teamNumber", opts.TeamNumber)
		q.SetInt("matchNumber", opts.MatchNumber)
		q.SetInt("start", opts.Start)
		q.SetInt("end", opts.End)
	}
	path := fmt.Sprintf("/%d/scores/%s/%s", c.season,
		url.PathEscape(eventCode), url.PathEscape(tournamentLevel))
	return c.get(ctx, path, q)
}

// ScheduleOptions parameterizes GetSchedule. TournamentLevel is
// mandatory; the API rejects schedule queries without one.
type ScheduleOptions struct {
	TournamentLevel string
	TeamNumber      int
}

// GetSchedule returns the match schedule for an event at one tournament
// level.
func (c *Client) GetSchedule(ctx context.Context, eventCode string, opts *ScheduleOptions) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	if opts == nil || opts.TournamentLevel == "" {
		return nil, &MissingArgumentError{Name: "tournamentLevel"}
	}
	q := &query{}
	q.Set("tournamentLevel", opts.TournamentLevel)
	q.SetInt("teamNumber", opts.TeamNumber)
	return c.get(ctx, fmt.Sprintf("/%d/schedule/%s", c.season, url.PathEscape(eventCode)), q)
}

// HybridScheduleOptions bounds a GetHybridSchedule query to a match
// number range.
type HybridScheduleOptions struct {
	Start int
	End   int
}

// GetHybridSchedule returns the schedule merged with results for the
// matches already played.
func (c *Client) GetHybridSchedule(ctx context.Context, eventCode, tournamentLevel string, opts *HybridScheduleOptions) (json.RawMessage, error) {
	if eventCode == "" {
		return nil, &MissingArgumentError{Name: "eventCode"}
	}
	if tournamentLevel == "" {
		return nil, &MissingArgumentError{Name: "tournamentLevel"}
	}
	q := &query{}
	if opts != nil {
		q.SetInt("start", opts.Start)
		q.SetInt("end", opts.End)
	}
	path := fmt.Sprintf("/%d/schedule/%s/%s/hybrid", c.season,
		url.PathEscape(eventCode), url.PathEscape(tournamentLevel))
	return c.get(ctx, path, q)
}
