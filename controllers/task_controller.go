package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/models"
	"github.com/Juggernaut7/Task-Tidy/services"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

// TaskController handles task CRUD and bulk operations.
type TaskController struct{}

// CreateTask creates a task owned by the caller.
func (tc *TaskController) CreateTask(c *gin.Context) {
	uid, username := identity(c)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task := models.Task{
		ID:            utils.GenerateID(),
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Category:      req.Category,
		Tags:          models.StringList(req.Tags),
		DueDate:       req.DueDate.Ptr(),
		ReminderDate:  req.ReminderDate.Ptr(),
		EstimatedTime: req.EstimatedTime,
		Notes:         req.Notes,
		Status:        req.Status,
		CreatedBy:     username,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = "General"
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}

	now := time.Now()
	task.Subtasks = make(models.SubtaskList, 0, len(req.Subtasks))
	for _, title := range req.Subtasks {
		task.Subtasks = append(task.Subtasks, models.Subtask{Title: title, CreatedAt: now})
	}

	if err := services.CreateTask(config.DB, uid, &task); err != nil {
		serverError(c, "task create failed", err, "userID", uid)
		return
	}

	services.InvalidateAnalytics(c.Request.Context(), username)

	c.JSON(http.StatusCreated, models.NewTaskResponse(task, now))
}

// ListTasks returns one filtered, sorted, paginated page of the caller's
// tasks.
func (tc *TaskController) ListTasks(c *gin.Context) {
	_, username := identity(c)

	var query models.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	tasks, pagination, err := services.ListTasks(config.DB, username, services.FilterFromQuery(query))
	if err != nil {
		var invalid *services.FilterError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"message": invalid.Error()})
			return
		}
		serverError(c, "task list failed", err, "owner", username)
		return
	}

	c.JSON(http.StatusOK, models.TaskListResponse{
		Tasks:      models.NewTaskResponses(tasks, time.Now()),
		Pagination: pagination,
	})
}

// GetTask returns one owned task.
func (tc *TaskController) GetTask(c *gin.Context) {
	_, username := identity(c)

	id := c.Param("id")
	if !utils.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Task ID"})
		return
	}

	task, err := services.GetTask(config.DB, username, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		serverError(c, "task fetch failed", err, "taskID", id)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(task, time.Now()))
}

// UpdateTask applies a partial update to one owned task.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid, username := identity(c)

	id := c.Param("id")
	if !utils.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Task ID"})
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	now := time.Now()
	task, err := services.UpdateTask(config.DB, uid, username, id, req, now)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		serverError(c, "task update failed", err, "taskID", id)
		return
	}

	services.InvalidateAnalytics(c.Request.Context(), username)

	c.JSON(http.StatusOK, models.NewTaskResponse(task, now))
}

// DeleteTask removes one owned task.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid, username := identity(c)

	id := c.Param("id")
	if !utils.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Task ID"})
		return
	}

	if err := services.DeleteTask(config.DB, uid, username, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		serverError(c, "task delete failed", err, "taskID", id)
		return
	}

	services.InvalidateAnalytics(c.Request.Context(), username)

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// BulkAction applies one action (delete/update/complete) to a set of the
// caller's task ids. Each listed id either fully succeeds or is skipped as
// not owned; the whole action commits in one transaction.
func (tc *TaskController) BulkAction(c *gin.Context) {
	uid, username := identity(c)

	var req models.BulkTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	for _, id := range req.TaskIDs {
		if !utils.ValidID(id) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Task ID"})
			return
		}
	}

	var (
		affected int
		err      error
		verb     string
	)

	switch req.Action {
	case models.BulkActionDelete:
		affected, err = services.BulkDelete(config.DB, uid, username, req.TaskIDs)
		verb = "deleted"
	case models.BulkActionComplete:
		affected, err = services.BulkComplete(config.DB, uid, username, req.TaskIDs, time.Now())
		verb = "completed"
	case models.BulkActionUpdate:
		if req.Updates == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "updates is required for the update action"})
			return
		}
		affected, err = services.BulkUpdate(config.DB, username, req.TaskIDs, *req.Updates, time.Now())
		verb = "updated"
	}

	if err != nil {
		serverError(c, "bulk action failed", err, "action", req.Action, "owner", username)
		return
	}

	services.InvalidateAnalytics(c.Request.Context(), username)

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%d tasks %s successfully", affected, verb)})
}
