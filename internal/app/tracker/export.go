package tracker

import (
	"fmt"
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// ExportYear packages one year's full state as a portable document:
// the yearly rollup, the achievement catalog and the goals.
func (s *Service) ExportYear(year int) (*domain.YearExport, error) {
	yp, err := s.YearProgress(year)
	if err != nil {
		return nil, err
	}
	if len(yp.DailyStats) == 0 {
		return nil, domain.ErrYearNotFound
	}

	achievements, err := s.db.ListAchievements()
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}

	return &domain.YearExport{
		Year:           year,
		ExportedAt:     time.Now().UTC(),
		YearlyProgress: yp,
		Achievements:   achievements,
		Goals:          goals,
	}, nil
}

// ImportYear restores a year from an export document. The day-history is
// replayed through the same upsert used by live recording, so an
// export/import round trip is lossless and every derived total is
// rebuilt rather than trusted from the document.
func (s *Service) ImportYear(doc *domain.YearExport) error {
	if doc == nil || len(doc.YearlyProgress.DailyStats) == 0 {
		return domain.ErrEmptyImport
	}
	if doc.Year != doc.YearlyProgress.Year {
		return domain.ErrYearMismatch
	}

	for _, day := range doc.YearlyProgress.DailyStats {
		if err := s.db.UpsertDailyStats(day); err != nil {
			return fmt.Errorf("import day %s: %w", day.Date, err)
		}
	}

	if len(doc.Achievements) > 0 {
		if err := s.db.ReplaceAchievements(doc.Achievements); err != nil {
			return fmt.Errorf("import achievements: %w", err)
		}
	}
	if err := s.SetGoals(doc.Goals); err != nil {
		return err
	}

	return s.refreshYear(doc.Year)
}
