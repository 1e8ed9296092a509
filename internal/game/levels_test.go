package game

import (
	"testing"
	"time"
)

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		level  Level
		period time.Duration
		reward int
		count  int
		next   int
	}{
		{Easy, 400 * time.Millisecond, 1, 4, 10},
		{Medium, 300 * time.Millisecond, 4, 3, 50},
		{Hard, 200 * time.Millisecond, 6, 2, 100},
		{Insane, 100 * time.Millisecond, 10, 1, 9999999},
	}
	for _, tt := range tests {
		d := DifficultyFor(tt.level)
		if d.Level != tt.level || d.TickPeriod != tt.period || d.ScorePerBonus != tt.reward || d.BonusCount != tt.count || d.NextLevelScore != tt.next {
			t.Errorf("%v = %+v", tt.level, d)
		}
	}
}

func TestDifficultyLadderIsMonotone(t *testing.T) {
	d := DifficultyFor(Easy)
	if d.Next(10).Level != Easy {
		t.Fatalf("left Easy at the threshold")
	}

	// one step per evaluation, however high the score
	d = d.Next(1000)
	if d.Level != Medium {
		t.Fatalf("level = %v, want medium", d.Level)
	}
	d = d.Next(1000).Next(1000)
	if d.Level != Insane {
		t.Fatalf("level = %v, want insane", d.Level)
	}
	if d.Next(1 << 30).Level != Insane {
		t.Fatalf("Insane is not terminal")
	}
}
