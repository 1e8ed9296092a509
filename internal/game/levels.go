package game

import "time"

type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Insane
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Insane:
		return "insane"
	default:
		return "unknown"
	}
}

// Difficulty is the tempo and reward of one level.
type Difficulty struct {
	Level          Level
	TickPeriod     time.Duration
	ScorePerBonus  int
	BonusCount     int
	NextLevelScore int
}

// DifficultyFor returns the preset for a level. Levels past Insane clamp to
// Insane.
func DifficultyFor(level Level) Difficulty {
	switch level {
	case Easy:
		return Difficulty{Level: Easy, TickPeriod: 400 * time.Millisecond, ScorePerBonus: 1, BonusCount: 4, NextLevelScore: 10}
	case Medium:
		return Difficulty{Level: Medium, TickPeriod: 300 * time.Millisecond, ScorePerBonus: 4, BonusCount: 3, NextLevelScore: 50}
	case Hard:
		return Difficulty{Level: Hard, TickPeriod: 200 * time.Millisecond, ScorePerBonus: 6, BonusCount: 2, NextLevelScore: 100}
	default:
		return Difficulty{Level: Insane, TickPeriod: 100 * time.Millisecond, ScorePerBonus: 10, BonusCount: 1, NextLevelScore: 9999999}
	}
}

// Next returns the following level once score has passed the threshold,
// and d otherwise. Insane is terminal.
func (d Difficulty) Next(score int) Difficulty {
	if d.Level == Insane || score <= d.NextLevelScore {
		return d
	}
	return DifficultyFor(d.Level + 1)
}
