package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Juggernaut7/Task-Tidy/models"
)

// Stats counters are only ever adjusted through these helpers, and only
// inside the same transaction as the task mutation they account for. That
// keeps the counters consistent with the task table under crashes and
// concurrent requests.

func statsUser(tx *gorm.DB, userID string) *gorm.DB {
	return tx.Model(&models.User{}).Where("id = ?", userID)
}

// StatsAddTasks shifts totalTasks by delta.
func StatsAddTasks(tx *gorm.DB, userID string, delta int) error {
	if delta == 0 {
		return nil
	}
	return statsUser(tx, userID).
		UpdateColumn("stat_total_tasks", gorm.Expr("stat_total_tasks + ?", delta)).Error
}

// StatsAddCompleted shifts completedTasks by delta.
func StatsAddCompleted(tx *gorm.DB, userID string, delta int) error {
	if delta == 0 {
		return nil
	}
	return statsUser(tx, userID).
		UpdateColumn("stat_completed_tasks", gorm.Expr("stat_completed_tasks + ?", delta)).Error
}

// StatsAddTimeSpent shifts totalTimeSpent by minutes.
func StatsAddTimeSpent(tx *gorm.DB, userID string, minutes int) error {
	if minutes == 0 {
		return nil
	}
	return statsUser(tx, userID).
		UpdateColumn("stat_total_time_spent", gorm.Expr("stat_total_time_spent + ?", minutes)).Error
}

// TouchActivity records a login: lastActiveDate moves to now and the streak
// extends when the previous activity was yesterday, resets when older, and
// is unchanged for a same-day repeat.
func TouchActivity(tx *gorm.DB, user *models.User, now time.Time) error {
	updates := map[string]interface{}{"stat_last_active_date": now}

	today := now.Truncate(24 * time.Hour)
	switch {
	case user.Stats.LastActiveDate == nil:
		updates["stat_streak_days"] = 1
	case user.Stats.LastActiveDate.Truncate(24 * time.Hour).Equal(today):
		// same day, streak unchanged
	case user.Stats.LastActiveDate.Truncate(24 * time.Hour).Equal(today.AddDate(0, 0, -1)):
		updates["stat_streak_days"] = user.Stats.StreakDays + 1
	default:
		updates["stat_streak_days"] = 1
	}

	return statsUser(tx, user.ID).UpdateColumns(updates).Error
}
