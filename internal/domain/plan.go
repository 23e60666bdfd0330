package domain

// TaskTemplate is one entry of the weekly study plan. Day task lists are
// seeded from templates the first time a day is viewed.
type TaskTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Duration    int       `json:"duration"` // minutes
	Description string    `json:"description,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Link        string    `json:"link,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Days        []Weekday `json:"days,omitempty"` // empty means every day
}

// AppliesTo reports whether the template is scheduled on a weekday.
func (t TaskTemplate) AppliesTo(w Weekday) bool {
	if len(t.Days) == 0 {
		return true
	}
	for _, d := range t.Days {
		if d == w {
			return true
		}
	}
	return false
}

// Plan is the weekly task template.
type Plan struct {
	Tasks []TaskTemplate `json:"tasks"`
}

// TasksFor instantiates the day's task list for a weekday. The mapping is
// total: every weekday yields a (possibly shorter) list.
func (p Plan) TasksFor(w Weekday) []Task {
	var tasks []Task
	for _, tmpl := range p.Tasks {
		if !tmpl.AppliesTo(w) {
			continue
		}
		tasks = append(tasks, Task{
			ID:          tmpl.ID,
			Name:        tmpl.Name,
			Emoji:       tmpl.Emoji,
			Duration:    tmpl.Duration,
			Description: tmpl.Description,
			Notes:       tmpl.Notes,
			Link:        tmpl.Link,
			Tags:        tmpl.Tags,
		})
	}
	return tasks
}
