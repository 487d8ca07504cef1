package domain

import "strings"

// Difficulty selects how many cells are removed from a full solution.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// CellsRemoved is the preset removal count for the difficulty.
func (d Difficulty) CellsRemoved() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 50
	case Hard:
		return 60
	}
	return 50
}

// Known reports whether d is one of the defined presets.
func (d Difficulty) Known() bool { return d >= Easy && d <= Hard }

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps a label to its Difficulty; unrecognized input defaults to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
