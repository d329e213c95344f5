package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task statuses (kanban columns).
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
)

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// Subtask is an embedded checklist item. Subtasks live inside their task
// document, not in their own table.
type Subtask struct {
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubtaskList is stored as a JSON column.
type SubtaskList []Subtask

func (l SubtaskList) Value() (driver.Value, error) {
	if l == nil {
		l = SubtaskList{}
	}
	return json.Marshal(l)
}

func (l *SubtaskList) Scan(value interface{}) error {
	if value == nil {
		*l = SubtaskList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into SubtaskList", value)
}

// StringList is stored as a JSON column. Tag membership queries rely on the
// `"tag"` quoting of the serialized form.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", value)
}

// Task is the core model. Subtasks and tags are embedded JSON documents,
// everything else is a plain column.
type Task struct {
	ID            string      `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title         string      `gorm:"type:varchar(200)" json:"title"`
	Description   string      `gorm:"type:varchar(1000)" json:"description"`
	Completed     bool        `gorm:"default:false;index:idx_tasks_owner_completed,priority:2" json:"completed"`
	Priority      string      `gorm:"type:varchar(20);default:medium" json:"priority"`
	Category      string      `gorm:"type:varchar(100);default:General" json:"category"`
	Tags          StringList  `gorm:"type:json" json:"tags"`
	DueDate       *time.Time  `gorm:"index" json:"dueDate"`
	ReminderDate  *time.Time  `json:"reminderDate"`
	EstimatedTime int         `gorm:"default:0" json:"estimatedTime"` // minutes
	ActualTime    int         `gorm:"default:0" json:"actualTime"`    // minutes
	Subtasks      SubtaskList `gorm:"type:json" json:"subtasks"`
	Notes         string      `gorm:"type:varchar(2000)" json:"notes"`
	Status        string      `gorm:"type:varchar(20);default:todo" json:"status"`
	CreatedBy     string      `gorm:"type:varchar(30);index;index:idx_tasks_owner_completed,priority:1" json:"createdBy"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	CompletedAt   *time.Time  `json:"completedAt"`
}

// Progress derives the completion percentage. With subtasks it is the
// rounded share of completed subtasks; without, it mirrors the completed
// flag. Never stored.
func (t *Task) Progress() int {
	if len(t.Subtasks) == 0 {
		if t.Completed {
			return 100
		}
		return 0
	}
	done := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(t.Subtasks)) * 100))
}

// IsOverdueAt reports whether the task's due date has passed at the given
// instant. A completed task is never overdue.
func (t *Task) IsOverdueAt(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return now.After(*t.DueDate)
}

// IsOverdue is IsOverdueAt against the wall clock.
func (t *Task) IsOverdue() bool {
	return t.IsOverdueAt(time.Now())
}
