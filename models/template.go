package models

import (
	"time"
)

// TaskTemplate is a reusable task blueprint. Subtask entries carry only a
// title; materialized subtasks always start uncompleted.
type TaskTemplate struct {
	ID            string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(100)" json:"name"`
	Description   string     `gorm:"type:varchar(500)" json:"description"`
	Category      string     `gorm:"type:varchar(100);default:General" json:"category"`
	Priority      string     `gorm:"type:varchar(20);default:medium" json:"priority"`
	EstimatedTime int        `gorm:"default:0" json:"estimatedTime"` // minutes
	Subtasks      StringList `gorm:"type:json" json:"subtasks"`
	Tags          StringList `gorm:"type:json" json:"tags"`
	Notes         string     `gorm:"type:varchar(1000)" json:"notes"`
	IsPublic      bool       `gorm:"default:false;index" json:"isPublic"`
	CreatedBy     string     `gorm:"type:varchar(30);index" json:"createdBy"`
	UsageCount    int        `gorm:"default:0" json:"usageCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// TaskOverrides are the caller-supplied fields that win over template
// defaults when materializing a task.
type TaskOverrides struct {
	Title         string
	Description   string
	Category      string
	Priority      string
	EstimatedTime int
	Tags          []string
	Notes         string
	DueDate       *time.Time
}

// NewTask materializes a task for owner from the template plus overrides.
// Template subtask titles become fresh uncompleted subtasks. The caller is
// responsible for persisting the task and bumping UsageCount.
func (t *TaskTemplate) NewTask(owner string, o TaskOverrides, now time.Time) Task {
	task := Task{
		Title:         t.Name,
		Description:   t.Description,
		Category:      t.Category,
		Priority:      t.Priority,
		EstimatedTime: t.EstimatedTime,
		Tags:          append(StringList{}, t.Tags...),
		Notes:         t.Notes,
		Status:        StatusTodo,
		CreatedBy:     owner,
	}

	if o.Title != "" {
		task.Title = o.Title
	}
	if o.Description != "" {
		task.Description = o.Description
	}
	if o.Category != "" {
		task.Category = o.Category
	}
	if o.Priority != "" {
		task.Priority = o.Priority
	}
	if o.EstimatedTime > 0 {
		task.EstimatedTime = o.EstimatedTime
	}
	if o.Tags != nil {
		task.Tags = append(StringList{}, o.Tags...)
	}
	if o.Notes != "" {
		task.Notes = o.Notes
	}
	if o.DueDate != nil {
		due := *o.DueDate
		task.DueDate = &due
	}

	task.Subtasks = make(SubtaskList, 0, len(t.Subtasks))
	for _, title := range t.Subtasks {
		task.Subtasks = append(task.Subtasks, Subtask{
			Title:     title,
			Completed: false,
			CreatedAt: now,
		})
	}

	return task
}
