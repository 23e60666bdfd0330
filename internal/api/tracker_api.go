package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// dayResponse bundles a day's task list with its note.
type dayResponse struct {
	Date  string        `json:"date"`
	Tasks []domain.Task `json:"tasks"`
	Note  string        `json:"note,omitempty"`
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	s.writeDay(w, domain.FormatDay(time.Now()))
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	s.writeDay(w, date)
}

func (s *Server) writeDay(w http.ResponseWriter, date string) {
	tasks, err := s.tracker.Day(date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	note, err := s.tracker.Note(date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dayResponse{Date: date, Tasks: tasks, Note: note})
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	s.setTaskCompleted(w, r, true)
}

func (s *Server) handleUncompleteTask(w http.ResponseWriter, r *http.Request) {
	s.setTaskCompleted(w, r, false)
}

func (s *Server) setTaskCompleted(w http.ResponseWriter, r *http.Request, completed bool) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "task")

	var err error
	if completed {
		err = s.tracker.CompleteTask(date, taskID)
	} else {
		err = s.tracker.UncompleteTask(date, taskID)
	}
	if errors.Is(err, domain.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, "task not found: "+taskID)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeDay(w, date)
}

func (s *Server) handlePomodoro(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "task")

	var req struct {
		Sessions int `json:"sessions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sessions <= 0 {
		writeError(w, http.StatusBadRequest, "sessions must be positive")
		return
	}

	err := s.tracker.RecordPomodoro(date, taskID, req.Sessions)
	if errors.Is(err, domain.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, "task not found: "+taskID)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeDay(w, date)
}

func (s *Server) handleSetNote(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.tracker.SetNote(date, req.Note); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeDay(w, date)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	yp, err := s.tracker.YearProgress(time.Now().Year())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"current_streak": yp.CurrentStreak,
		"longest_streak": yp.LongestStreak,
	})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	yp, err := s.tracker.YearProgress(time.Now().Year())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"level":       yp.Level,
		"experience":  yp.Experience,
		"total_hours": yp.TotalHours,
	})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	yp, err := s.tracker.YearProgress(year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, yp)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.tracker.Achievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": achievements,
	})
}

func (s *Server) handleListVocabulary(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	words, err := s.tracker.Vocabulary(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vocabulary": words,
	})
}

func (s *Server) handleAddVocabulary(w http.ResponseWriter, r *http.Request) {
	var entry domain.VocabularyEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if entry.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	saved, err := s.tracker.AddVocabulary(entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	pending, err := s.tracker.PendingNotifications(50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": pending,
	})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.tracker.MarkNotificationShown(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.tracker.Goals()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleSetGoals(w http.ResponseWriter, r *http.Request) {
	var goals domain.LearningGoals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.tracker.SetGoals(goals); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	doc, err := s.tracker.ExportYear(year)
	if errors.Is(err, domain.ErrYearNotFound) {
		writeError(w, http.StatusNotFound, "no history for year")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var doc domain.YearExport
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := s.tracker.ImportYear(&doc)
	switch {
	case errors.Is(err, domain.ErrEmptyImport), errors.Is(err, domain.ErrYearMismatch):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
	}
}

// dateParam extracts and validates the {date} URL parameter.
func dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := domain.ParseDay(date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return "", false
	}
	return date, true
}
