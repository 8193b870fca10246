// Package season enumerates the FIRST Tech Challenge seasons the Events
// API serves. A season is identified by the year its kickoff falls in.
package season

import "fmt"

// Season identifies one competition season by kickoff year.
type Season int

// Supported seasons, newest last.
const (
	SkyStone      Season = 2019
	UltimateGoal  Season = 2020
	FreightFrenzy Season = 2021
	PowerPlay     Season = 2022
	CenterStage   Season = 2023
	IntoTheDeep   Season = 2024
	Decode        Season = 2025
)

// All returns the supported seasons in chronological order.
func All() []Season {
	return []Season{
		SkyStone,
		UltimateGoal,
		FreightFrenzy,
		PowerPlay,
		CenterStage,
		IntoTheDeep,
		Decode,
	}
}

// Latest returns the most recent supported season.
func Latest() Season {
	return Decode
}

// Valid reports whether s is a supported season.
func (s Season) Valid() bool {
	return s >= SkyStone && s <= Decode
}

// Year returns the kickoff year.
func (s Season) Year() int {
	return int(s)
}

// String returns the game name for the season.
func (s Season) String() string {
	switch s {
	case SkyStone:
		return "SKYSTONE"
	case UltimateGoal:
		return "ULTIMATE GOAL"
	case FreightFrenzy:
		return "FREIGHT FRENZY"
	case PowerPlay:
		return "POWERPLAY"
	case CenterStage:
		return "CENTERSTAGE"
	case IntoTheDeep:
		return "INTO THE DEEP"
	case Decode:
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}

// FromYear maps a kickoff year onto a supported season.
func FromYear(year int) (Season, error) {
	s := Season(year)
	if !s.Valid() {
		return 0, fmt.Errorf("unsupported season year %d (supported: %d-%d)",
			year, SkyStone.Year(), Latest().Year())
	}
	return s, nil
}
