package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Juggernaut7/Task-Tidy/models"
)

// AnalyticsSummary computes the owner's dashboard aggregates at the given
// instant: a completion trend over the trailing period, distributions by
// priority/category/status, and the overdue and due-today counts.
func AnalyticsSummary(db *gorm.DB, owner string, periodDays int, now time.Time) (models.AnalyticsResponse, error) {
	if periodDays < 1 {
		periodDays = 30
	}
	since := now.AddDate(0, 0, -periodDays)

	var resp models.AnalyticsResponse

	// Completed-per-day trend, ascending by date. Backtick quoting of the
	// aliases works on both MySQL and SQLite.
	err := OwnedTasks(db, owner).
		Select("DATE(completed_at) AS `key`, COUNT(*) AS `count`").
		Where("completed_at IS NOT NULL AND completed_at >= ?", since).
		Group("DATE(completed_at)").
		Order("`key` ASC").
		Scan(&resp.CompletionTrends).Error
	if err != nil {
		return resp, err
	}

	err = OwnedTasks(db, owner).
		Select("priority AS `key`, COUNT(*) AS `count`").
		Group("priority").
		Scan(&resp.PriorityDistribution).Error
	if err != nil {
		return resp, err
	}

	err = OwnedTasks(db, owner).
		Select("category AS `key`, COUNT(*) AS `count`").
		Group("category").
		Order("`count` DESC").
		Limit(10).
		Scan(&resp.CategoryDistribution).Error
	if err != nil {
		return resp, err
	}

	err = OwnedTasks(db, owner).
		Select("status AS `key`, COUNT(*) AS `count`").
		Group("status").
		Scan(&resp.StatusDistribution).Error
	if err != nil {
		return resp, err
	}

	err = OwnedTasks(db, owner).
		Where("due_date < ? AND completed = ?", now, false).
		Count(&resp.OverdueTasks).Error
	if err != nil {
		return resp, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	err = OwnedTasks(db, owner).
		Where("due_date >= ? AND due_date < ?", today, tomorrow).
		Count(&resp.TodaysTasks).Error
	if err != nil {
		return resp, err
	}

	if resp.CompletionTrends == nil {
		resp.CompletionTrends = []models.Bucket{}
	}
	if resp.PriorityDistribution == nil {
		resp.PriorityDistribution = []models.Bucket{}
	}
	if resp.CategoryDistribution == nil {
		resp.CategoryDistribution = []models.Bucket{}
	}
	if resp.StatusDistribution == nil {
		resp.StatusDistribution = []models.Bucket{}
	}

	return resp, nil
}
