package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Juggernaut7/Task-Tidy/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// sortColumns whitelists the sortable fields. Anything else falls back to
// the default createdAt ordering.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"title":     "title",
	"status":    "status",
}

// FilterError marks a filter the caller got wrong (vs. a store failure).
type FilterError struct {
	msg string
}

func (e *FilterError) Error() string { return e.msg }

// TaskFilter is the normalized /api/tasks filter set.
type TaskFilter struct {
	Status    string
	Priority  string
	Category  string
	Search    string
	DueDate   string // "2006-01-02"
	Tags      string // comma separated
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// FilterFromQuery lifts bound query params into a TaskFilter.
func FilterFromQuery(q models.TaskListQuery) TaskFilter {
	return TaskFilter{
		Status:    q.Status,
		Priority:  q.Priority,
		Category:  q.Category,
		Search:    q.Search,
		DueDate:   q.DueDate,
		Tags:      q.Tags,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		Limit:     q.Limit,
	}
}

// OwnedTasks is the single place the owner-scoping predicate is written.
// Every task query path goes through it; cross-owner access is impossible
// by construction.
func OwnedTasks(db *gorm.DB, owner string) *gorm.DB {
	return db.Model(&models.Task{}).Where("created_by = ?", owner)
}

// OwnedTemplates scopes templates to those visible to the owner: their own
// plus public ones.
func OwnedTemplates(db *gorm.DB, owner string) *gorm.DB {
	return db.Model(&models.TaskTemplate{}).Where("created_by = ? OR is_public = ?", owner, true)
}

// Apply builds the filtered, owner-scoped query. Unset fields impose no
// constraint. Sorting and pagination are left to List.
func (f TaskFilter) Apply(db *gorm.DB, owner string) (*gorm.DB, error) {
	q := OwnedTasks(db, owner)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.DueDate != "" {
		day, err := time.Parse("2006-01-02", f.DueDate)
		if err != nil {
			return nil, &FilterError{msg: fmt.Sprintf("invalid dueDate %q, expected YYYY-MM-DD", f.DueDate)}
		}
		q = q.Where("due_date >= ? AND due_date < ?", day, day.AddDate(0, 0, 1))
	}
	if f.Tags != "" {
		var clauses []string
		var args []interface{}
		for _, tag := range strings.Split(f.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			// tags is a JSON array column; membership via the quoted form
			clauses = append(clauses, "tags LIKE ?")
			args = append(args, `%"`+tag+`"%`)
		}
		if len(clauses) > 0 {
			q = q.Where(strings.Join(clauses, " OR "), args...)
		}
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	return q, nil
}

// orderClause resolves sortBy/sortOrder against the whitelist.
func (f TaskFilter) orderClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// window returns the sanitized page and limit.
func (f TaskFilter) window() (page, limit int) {
	page = f.Page
	if page < 1 {
		page = 1
	}
	limit = f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// ListTasks runs the filter against the store and returns one page plus the
// pagination envelope.
func ListTasks(db *gorm.DB, owner string, f TaskFilter) ([]models.Task, models.Pagination, error) {
	counting, err := f.Apply(db, owner)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	var total int64
	if err := counting.Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	page, limit := f.window()

	// Fresh query for the page fetch; sharing the counting statement would
	// reuse its SELECT.
	q, _ := f.Apply(db, owner)

	var tasks []models.Task
	err = q.Order(f.orderClause()).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return tasks, models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
