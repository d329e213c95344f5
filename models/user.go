package models

import (
	"math"
	"time"
)

// Notifications holds the per-channel notification switches.
type Notifications struct {
	Email     bool `gorm:"default:true" json:"email"`
	Push      bool `gorm:"default:true" json:"push"`
	Reminders bool `gorm:"default:true" json:"reminders"`
}

// Preferences is the user's UI and defaults configuration, embedded in the
// users table.
type Preferences struct {
	Theme           string        `gorm:"type:varchar(10);default:auto" json:"theme" binding:"omitempty,oneof=light dark auto"`
	DefaultView     string        `gorm:"type:varchar(10);default:list" json:"defaultView" binding:"omitempty,oneof=list kanban calendar"`
	DefaultPriority string        `gorm:"type:varchar(20);default:medium" json:"defaultPriority" binding:"omitempty,oneof=low medium high urgent"`
	DefaultCategory string        `gorm:"type:varchar(100);default:General" json:"defaultCategory"`
	Notifications   Notifications `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	Timezone        string        `gorm:"type:varchar(50);default:UTC" json:"timezone"`
	Language        string        `gorm:"type:varchar(10);default:en" json:"language"`
}

// Stats are per-user aggregate counters. They are adjusted inside the same
// transaction as the task mutation they reflect (see services.Stats*).
type Stats struct {
	TotalTasks     int        `gorm:"default:0" json:"totalTasks"`
	CompletedTasks int        `gorm:"default:0" json:"completedTasks"`
	TotalTimeSpent int        `gorm:"default:0" json:"totalTimeSpent"` // minutes
	StreakDays     int        `gorm:"default:0" json:"streakDays"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
}

// User is the account model.
type User struct {
	ID          string      `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username    string      `gorm:"type:varchar(30);uniqueIndex" json:"username"`
	Email       string      `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password    string      `gorm:"type:varchar(100)" json:"-"`
	FirstName   string      `gorm:"type:varchar(50)" json:"firstName"`
	LastName    string      `gorm:"type:varchar(50)" json:"lastName"`
	Avatar      string      `gorm:"type:varchar(255)" json:"avatar"`
	Preferences Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	Stats       Stats       `gorm:"embedded;embeddedPrefix:stat_" json:"stats"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// FullName returns "First Last" when both are set, otherwise the username.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// CompletionRate derives the completed share of the user's tasks in percent.
func (u *User) CompletionRate() int {
	if u.Stats.TotalTasks == 0 {
		return 0
	}
	return int(math.Round(float64(u.Stats.CompletedTasks) / float64(u.Stats.TotalTasks) * 100))
}
