package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/models"
	"github.com/Juggernaut7/Task-Tidy/services"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

// TemplateController handles task templates and template materialization.
type TemplateController struct{}

// CreateTemplate creates a template owned by the caller.
func (tpl *TemplateController) CreateTemplate(c *gin.Context) {
	_, username := identity(c)

	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	template := models.TaskTemplate{
		ID:            utils.GenerateID(),
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		EstimatedTime: req.EstimatedTime,
		Subtasks:      models.StringList(req.Subtasks),
		Tags:          models.StringList(req.Tags),
		Notes:         req.Notes,
		IsPublic:      req.IsPublic,
		CreatedBy:     username,
	}
	if template.Priority == "" {
		template.Priority = models.PriorityMedium
	}
	if template.Category == "" {
		template.Category = "General"
	}

	if err := config.DB.Create(&template).Error; err != nil {
		serverError(c, "template create failed", err, "owner", username)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// ListTemplates returns the caller's templates plus public ones.
func (tpl *TemplateController) ListTemplates(c *gin.Context) {
	_, username := identity(c)

	templates, err := services.ListTemplates(config.DB, username)
	if err != nil {
		serverError(c, "template list failed", err, "owner", username)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTaskFromTemplate materializes a task from a template plus caller
// overrides.
func (tpl *TemplateController) CreateTaskFromTemplate(c *gin.Context) {
	uid, username := identity(c)

	id := c.Param("id")
	if !utils.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Template ID"})
		return
	}

	// Overrides are optional; an empty body materializes the template as is.
	var req models.CreateFromTemplateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	now := time.Now()
	task, err := services.CreateTaskFromTemplate(config.DB, uid, username, id, req.Overrides(), now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Template not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		default:
			serverError(c, "create from template failed", err, "templateID", id)
		}
		return
	}

	services.InvalidateAnalytics(c.Request.Context(), username)

	c.JSON(http.StatusCreated, models.NewTaskResponse(task, now))
}
