// Package app provides application-layer orchestration services.
// It wires domain logic with infrastructure, never the reverse.
package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// ParsePlanfile parses a weekly study plan from a reader.
// Supported directives: TASK, EMOJI, DURATION, DAYS, DESC, NOTE, LINK
// (alias RESOURCE), TAGS.
// TASK opens a new template; the directives that follow apply to it.
// Multi-line descriptions use triple-quote delimiters (""").
func ParsePlanfile(r io.Reader) (*domain.Plan, error) {
	plan := &domain.Plan{}

	scanner := bufio.NewScanner(r)
	var current *domain.TaskTemplate
	var multiLine *string
	var inMultiLine bool

	for scanner.Scan() {
		line := scanner.Text()

		// Handle multi-line blocks (""" delimiters)
		if inMultiLine {
			trimmed := strings.TrimSpace(line)
			if trimmed == `"""` {
				inMultiLine = false
				multiLine = nil
				continue
			}
			*multiLine += line + "\n"
			continue
		}

		line = strings.TrimSpace(line)

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 {
			continue // Ignore malformed lines
		}

		directive := strings.ToUpper(parts[0])
		value := strings.TrimSpace(parts[1])

		if directive == "TASK" {
			id, name := parseTaskHeader(value)
			plan.Tasks = append(plan.Tasks, domain.TaskTemplate{ID: id, Name: name})
			current = &plan.Tasks[len(plan.Tasks)-1]
			continue
		}

		if current == nil {
			continue // Directives before the first TASK are ignored
		}

		switch directive {
		case "EMOJI":
			current.Emoji = value

		case "DURATION":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("task %s: invalid DURATION %q", current.ID, value)
			}
			current.Duration = n

		case "DAYS":
			days, err := parseDayList(value)
			if err != nil {
				return nil, fmt.Errorf("task %s: %w", current.ID, err)
			}
			current.Days = days

		case "DESC":
			if strings.HasPrefix(value, `"""`) {
				current.Description = ""
				multiLine = &current.Description
				inMultiLine = true
			} else {
				current.Description = unquote(value)
			}

		case "NOTE":
			current.Notes = unquote(value)

		case "LINK", "RESOURCE":
			current.Link = value

		case "TAGS":
			current.Tags = unquote(value)

		default:
			// Unknown directives are silently ignored for forward compatibility
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read Planfile: %w", err)
	}

	if len(plan.Tasks) == 0 {
		return nil, domain.ErrNoTasksDirective
	}

	return plan, nil
}

// parseTaskHeader splits `id "Display Name"` into its parts. The display
// name falls back to the id when omitted.
func parseTaskHeader(value string) (id, name string) {
	parts := strings.SplitN(value, " ", 2)
	id = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		name = unquote(strings.TrimSpace(parts[1]))
	}
	if name == "" {
		name = id
	}
	return id, name
}

// parseDayList parses "mon,tue,wed" into weekdays.
func parseDayList(value string) ([]domain.Weekday, error) {
	var days []domain.Weekday
	for _, part := range strings.Split(value, ",") {
		d, err := domain.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// unquote removes surrounding double quotes if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// DefaultPlan returns the built-in weekly plan: the standard daily study
// tasks plus app exercises on Monday through Thursday.
func DefaultPlan() domain.Plan {
	return domain.Plan{Tasks: []domain.TaskTemplate{
		{
			ID: "glossar", Name: "Glossary study", Emoji: "📘", Duration: 60,
			Description: "Memorize new words and practice vocabulary",
			Link:        "https://languagereactor.com",
			Tags:        "#Vocabulary",
		},
		{
			ID: "interactive-videos", Name: "Interactive video lessons", Emoji: "🎬", Duration: 60,
			Description: "Watch 1–2 episodes, note 5 new expressions, practice shadowing",
			Tags:        "#Speaking #Listening #Vocabulary",
		},
		{
			ID: "radio-podcast", Name: "Radio and podcast practice", Emoji: "📻", Duration: 30,
			Description: "Listen to a native radio station and summarize 3 topics",
			Tags:        "#Listening #RealLanguage",
		},
		{
			ID: "video-lessons", Name: "Structured video lessons", Emoji: "🧑‍🏫", Duration: 45,
			Description: "Grammar-focused lessons with a teacher",
			Tags:        "#Grammar #Structured",
		},
		{
			ID: "exam", Name: "Exam preparation", Emoji: "📝", Duration: 30,
			Description: "Test exercises and exam practice",
		},
		{
			ID: "listening", Name: "Listening: film, podcast, radio", Emoji: "🎧", Duration: 45,
			Description: "Native media for listening comprehension",
		},
		{
			ID: "app-exercises", Name: "App exercises", Emoji: "📱", Duration: 60,
			Description: "Interactive app-based practice",
			Days:        []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday},
		},
	}}
}
