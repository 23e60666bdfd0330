package progress_test

import (
	"testing"

	"github.com/sprachlog/sprachlog/internal/app/progress"
)

func TestLevelAndExperience(t *testing.T) {
	tests := []struct {
		hours     float64
		wantLevel int
		wantExp   int
	}{
		{0.0, 1, 0},
		{25.0, 3, 50},
		{9.9, 1, 99},
		{10.0, 2, 0},
		{99.5, 10, 95},
		{100.0, 11, 0},
		{0.5, 1, 5},
	}

	for _, tt := range tests {
		if got := progress.LevelForHours(tt.hours); got != tt.wantLevel {
			t.Errorf("LevelForHours(%v) = %d, want %d", tt.hours, got, tt.wantLevel)
		}
		if got := progress.ExperienceForHours(tt.hours); got != tt.wantExp {
			t.Errorf("ExperienceForHours(%v) = %d, want %d", tt.hours, got, tt.wantExp)
		}
	}
}

func TestLevelForHours_NeverBelowOne(t *testing.T) {
	if got := progress.LevelForHours(-5); got != 1 {
		t.Errorf("expected level 1 for negative hours, got %d", got)
	}
	if got := progress.ExperienceForHours(-5); got != 0 {
		t.Errorf("expected experience 0 for negative hours, got %d", got)
	}
}
