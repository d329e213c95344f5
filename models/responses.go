package models

import "time"

// TaskResponse is a task plus its derived fields. Progress and overdue are
// recomputed on every serialization, never read from storage.
type TaskResponse struct {
	Task
	Progress  int  `json:"progress"`
	IsOverdue bool `json:"isOverdue"`
}

// NewTaskResponse derives the response view of a task at the given instant.
func NewTaskResponse(t Task, now time.Time) TaskResponse {
	return TaskResponse{
		Task:      t,
		Progress:  t.Progress(),
		IsOverdue: t.IsOverdueAt(now),
	}
}

// NewTaskResponses maps a task slice into response views.
func NewTaskResponses(tasks []Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskResponse(t, now)
	}
	return out
}

// Pagination describes a result window.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// TaskListResponse is the /api/tasks envelope.
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// Bucket is one {key, count} pair of a grouped aggregate.
type Bucket struct {
	Key   string `json:"key" gorm:"column:key"`
	Count int64  `json:"count" gorm:"column:count"`
}

// AnalyticsResponse is the /api/analytics summary.
type AnalyticsResponse struct {
	CompletionTrends     []Bucket `json:"completionTrends"`
	PriorityDistribution []Bucket `json:"priorityDistribution"`
	CategoryDistribution []Bucket `json:"categoryDistribution"`
	StatusDistribution   []Bucket `json:"statusDistribution"`
	OverdueTasks         int64    `json:"overdueTasks"`
	TodaysTasks          int64    `json:"todaysTasks"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	FullName       string      `json:"fullName"`
	Avatar         string      `json:"avatar"`
	Preferences    Preferences `json:"preferences"`
	Stats          Stats       `json:"stats"`
	CompletionRate int         `json:"completionRate"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// NewUserResponse builds the public view of a user.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Avatar:         u.Avatar,
		Preferences:    u.Preferences,
		Stats:          u.Stats,
		CompletionRate: u.CompletionRate(),
		CreatedAt:      u.CreatedAt,
	}
}
