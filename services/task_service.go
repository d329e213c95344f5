package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Juggernaut7/Task-Tidy/models"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

var (
	// ErrNotFound means the resource does not exist or belongs to someone else.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the resource exists but the caller may not use it.
	ErrForbidden = errors.New("forbidden")
)

// CreateTask persists a new task and bumps the owner's total counter in the
// same transaction.
func CreateTask(db *gorm.DB, userID string, task *models.Task) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return StatsAddTasks(tx, userID, 1)
	})
}

// GetTask fetches one owned task.
func GetTask(db *gorm.DB, owner, id string) (models.Task, error) {
	var task models.Task
	err := OwnedTasks(db, owner).Where("id = ?", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return task, ErrNotFound
	}
	return task, err
}

// UpdateTask applies a partial update to one owned task. Completion
// transitions maintain completedAt, the status column, and the owner's
// counters, all inside one transaction.
func UpdateTask(db *gorm.DB, userID, owner, id string, req models.UpdateTaskRequest, now time.Time) (models.Task, error) {
	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := OwnedTasks(tx, owner).Where("id = ?", id).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Category != nil {
			task.Category = *req.Category
		}
		if req.Tags != nil {
			task.Tags = append(models.StringList{}, req.Tags...)
		}
		if req.DueDate != nil {
			task.DueDate = req.DueDate.Ptr()
		}
		if req.ReminderDate != nil {
			task.ReminderDate = req.ReminderDate.Ptr()
		}
		if req.EstimatedTime != nil {
			task.EstimatedTime = *req.EstimatedTime
		}
		if req.ActualTime != nil {
			task.ActualTime = *req.ActualTime
		}
		if req.Subtasks != nil {
			task.Subtasks = append(models.SubtaskList{}, req.Subtasks...)
		}
		if req.Notes != nil {
			task.Notes = *req.Notes
		}
		if req.Status != nil {
			task.Status = *req.Status
		}

		if req.Completed != nil && *req.Completed != task.Completed {
			if *req.Completed {
				task.Completed = true
				task.CompletedAt = &now
				if req.Status == nil {
					task.Status = models.StatusCompleted
				}
				if err := StatsAddCompleted(tx, userID, 1); err != nil {
					return err
				}
				if err := StatsAddTimeSpent(tx, userID, task.ActualTime); err != nil {
					return err
				}
			} else {
				task.Completed = false
				task.CompletedAt = nil
				if err := StatsAddCompleted(tx, userID, -1); err != nil {
					return err
				}
				if err := StatsAddTimeSpent(tx, userID, -task.ActualTime); err != nil {
					return err
				}
			}
		}

		// Save (not Updates) so cleared pointers like completedAt persist.
		return tx.Save(&task).Error
	})
	return task, err
}

// DeleteTask removes one owned task and settles the owner's counters in the
// same transaction.
func DeleteTask(db *gorm.DB, userID, owner, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := OwnedTasks(tx, owner).Where("id = ?", id).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&models.Task{}, "id = ?", task.ID).Error; err != nil {
			return err
		}
		if err := StatsAddTasks(tx, userID, -1); err != nil {
			return err
		}
		if task.Completed {
			return StatsAddCompleted(tx, userID, -1)
		}
		return nil
	})
}

// BulkDelete removes the caller's tasks among ids and returns how many went
// away. totalTasks drops by that count and completedTasks by the completed
// share, in the same transaction as the delete.
func BulkDelete(db *gorm.DB, userID, owner string, ids []string) (int, error) {
	var affected int
	err := db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		if err := OwnedTasks(tx, owner).Where("id IN ?", ids).Find(&tasks).Error; err != nil {
			return err
		}

		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}

		if err := OwnedTasks(tx, owner).Where("id IN ?", ids).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		affected = len(tasks)
		if err := StatsAddTasks(tx, userID, -affected); err != nil {
			return err
		}
		return StatsAddCompleted(tx, userID, -completed)
	})
	return affected, err
}

// BulkComplete marks the caller's tasks among ids completed and returns how
// many actually flipped. Counters move only by the newly completed count.
func BulkComplete(db *gorm.DB, userID, owner string, ids []string, now time.Time) (int, error) {
	var affected int
	err := db.Transaction(func(tx *gorm.DB) error {
		var pending []models.Task
		if err := OwnedTasks(tx, owner).
			Where("id IN ? AND completed = ?", ids, false).
			Find(&pending).Error; err != nil {
			return err
		}

		if len(pending) == 0 {
			return nil
		}

		timeSpent := 0
		pendingIDs := make([]string, len(pending))
		for i, t := range pending {
			pendingIDs[i] = t.ID
			timeSpent += t.ActualTime
		}

		err := OwnedTasks(tx, owner).Where("id IN ?", pendingIDs).
			UpdateColumns(map[string]interface{}{
				"completed":    true,
				"completed_at": now,
				"status":       models.StatusCompleted,
				"updated_at":   now,
			}).Error
		if err != nil {
			return err
		}

		affected = len(pending)
		if err := StatsAddCompleted(tx, userID, affected); err != nil {
			return err
		}
		return StatsAddTimeSpent(tx, userID, timeSpent)
	})
	return affected, err
}

// bulkUpdateColumns maps the fields a bulk update may touch. Completion is
// excluded; the complete action owns that transition and its counters.
func bulkUpdateColumns(req models.UpdateTaskRequest, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = models.StringList(req.Tags)
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate.Ptr()
	}
	if req.ReminderDate != nil {
		updates["reminder_date"] = req.ReminderDate.Ptr()
	}
	if req.EstimatedTime != nil {
		updates["estimated_time"] = *req.EstimatedTime
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	return updates
}

// BulkUpdate applies the shared field updates to the caller's tasks among
// ids and returns the affected row count.
func BulkUpdate(db *gorm.DB, owner string, ids []string, req models.UpdateTaskRequest, now time.Time) (int, error) {
	updates := bulkUpdateColumns(req, now)
	if len(updates) == 1 {
		// only updated_at; nothing requested
		return 0, nil
	}

	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := OwnedTasks(tx, owner).Where("id IN ?", ids).UpdateColumns(updates)
		affected = res.RowsAffected
		return res.Error
	})
	return int(affected), err
}

// GetTemplate fetches a template visible to the owner. A private template
// someone else owns yields ErrForbidden.
func GetTemplate(db *gorm.DB, owner, id string) (models.TaskTemplate, error) {
	var tpl models.TaskTemplate
	err := db.Where("id = ?", id).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tpl, ErrNotFound
	}
	if err != nil {
		return tpl, err
	}
	if !tpl.IsPublic && tpl.CreatedBy != owner {
		return tpl, ErrForbidden
	}
	return tpl, nil
}

// ListTemplates returns the owner's templates plus public ones, newest
// first.
func ListTemplates(db *gorm.DB, owner string) ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	err := OwnedTemplates(db, owner).Order("created_at DESC").Find(&templates).Error
	return templates, err
}

// CreateTaskFromTemplate materializes a task from a template. The task
// insert, the template usage bump, and the owner's counter all commit
// together.
func CreateTaskFromTemplate(db *gorm.DB, userID, owner, templateID string, o models.TaskOverrides, now time.Time) (models.Task, error) {
	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		tpl, err := GetTemplate(tx, owner, templateID)
		if err != nil {
			return err
		}

		task = tpl.NewTask(owner, o, now)
		task.ID = utils.GenerateID()
		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		err = tx.Model(&models.TaskTemplate{}).Where("id = ?", tpl.ID).
			UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
		if err != nil {
			return err
		}

		return StatsAddTasks(tx, userID, 1)
	})
	return task, err
}
