package models

import (
	"fmt"
	"strings"
	"time"
)

// FlexTime accepts both RFC3339 timestamps and bare "2006-01-02" dates in
// request bodies.
type FlexTime struct {
	time.Time
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	f.Time = t
	return nil
}

// Ptr returns the wrapped time as *time.Time, nil for the zero value.
func (f *FlexTime) Ptr() *time.Time {
	if f == nil || f.IsZero() {
		return nil
	}
	t := f.Time
	return &t
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries partial profile updates. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	FirstName   *string      `json:"firstName" binding:"omitempty,max=50"`
	LastName    *string      `json:"lastName" binding:"omitempty,max=50"`
	Avatar      *string      `json:"avatar" binding:"omitempty,max=255"`
	Preferences *Preferences `json:"preferences"`
}

// CreateTaskRequest is the task creation payload.
type CreateTaskRequest struct {
	Title         string    `json:"title" binding:"required,max=200"`
	Description   string    `json:"description" binding:"omitempty,max=1000"`
	Priority      string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category      string    `json:"category" binding:"omitempty,max=100"`
	Tags          []string  `json:"tags"`
	DueDate       *FlexTime `json:"dueDate"`
	ReminderDate  *FlexTime `json:"reminderDate"`
	EstimatedTime int       `json:"estimatedTime" binding:"omitempty,min=0"`
	Subtasks      []string  `json:"subtasks"`
	Notes         string    `json:"notes" binding:"omitempty,max=2000"`
	Status        string    `json:"status" binding:"omitempty,oneof=todo in-progress review completed"`
}

// UpdateTaskRequest carries a partial task update. Nil fields are left
// untouched; subtasks replace the whole list when present.
type UpdateTaskRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=1000"`
	Completed     *bool      `json:"completed"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category      *string    `json:"category" binding:"omitempty,max=100"`
	Tags          []string   `json:"tags"`
	DueDate       *FlexTime  `json:"dueDate"`
	ReminderDate  *FlexTime  `json:"reminderDate"`
	EstimatedTime *int       `json:"estimatedTime" binding:"omitempty,min=0"`
	ActualTime    *int       `json:"actualTime" binding:"omitempty,min=0"`
	Subtasks      []Subtask  `json:"subtasks"`
	Notes         *string    `json:"notes" binding:"omitempty,max=2000"`
	Status        *string    `json:"status" binding:"omitempty,oneof=todo in-progress review completed"`
}

// Bulk actions.
const (
	BulkActionDelete   = "delete"
	BulkActionUpdate   = "update"
	BulkActionComplete = "complete"
)

// BulkTaskRequest applies one action to a set of task ids.
type BulkTaskRequest struct {
	Action  string             `json:"action" binding:"required,oneof=delete update complete"`
	TaskIDs []string           `json:"taskIds" binding:"required,min=1"`
	Updates *UpdateTaskRequest `json:"updates"`
}

// TaskListQuery is the /api/tasks filter set, bound from query params.
type TaskListQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=todo in-progress review completed"`
	Priority  string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	DueDate   string `form:"dueDate"`
	Tags      string `form:"tags"`
}

// CreateFromTemplateRequest carries per-field overrides for materializing
// a task from a template.
type CreateFromTemplateRequest struct {
	Title         string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   string    `json:"description" binding:"omitempty,max=1000"`
	Category      string    `json:"category" binding:"omitempty,max=100"`
	Priority      string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	EstimatedTime int       `json:"estimatedTime" binding:"omitempty,min=0"`
	Tags          []string  `json:"tags"`
	Notes         string    `json:"notes" binding:"omitempty,max=2000"`
	DueDate       *FlexTime `json:"dueDate"`
}

// Overrides converts the request into template overrides.
func (r *CreateFromTemplateRequest) Overrides() TaskOverrides {
	return TaskOverrides{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Priority:      r.Priority,
		EstimatedTime: r.EstimatedTime,
		Tags:          r.Tags,
		Notes:         r.Notes,
		DueDate:       r.DueDate.Ptr(),
	}
}

// CreateTemplateRequest is the template creation payload.
type CreateTemplateRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Description   string   `json:"description" binding:"omitempty,max=500"`
	Category      string   `json:"category" binding:"omitempty,max=100"`
	Priority      string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	EstimatedTime int      `json:"estimatedTime" binding:"omitempty,min=0"`
	Subtasks      []string `json:"subtasks"`
	Tags          []string `json:"tags"`
	Notes         string   `json:"notes" binding:"omitempty,max=1000"`
	IsPublic      bool     `json:"isPublic"`
}
