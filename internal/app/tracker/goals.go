package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/sprachlog/sprachlog/internal/domain"
)

const goalsKey = "goals"

// Goals returns the stored learning goals, falling back to the built-in
// defaults when none were ever saved.
func (s *Service) Goals() (domain.LearningGoals, error) {
	raw, err := s.db.GetSetting(goalsKey)
	if err != nil {
		return domain.LearningGoals{}, err
	}
	if raw == "" {
		return domain.DefaultGoals(), nil
	}

	var goals domain.LearningGoals
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return domain.LearningGoals{}, fmt.Errorf("decode goals: %w", err)
	}
	return goals, nil
}

// SetGoals replaces the learning goals. Goals carry no derived state, so
// no recalculation follows.
func (s *Service) SetGoals(goals domain.LearningGoals) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return s.db.SetSetting(goalsKey, string(raw))
}
