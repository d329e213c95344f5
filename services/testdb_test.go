package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Juggernaut7/Task-Tidy/models"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

// testDB opens a fresh in-memory sqlite database for one test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	// a single connection keeps the shared-cache memory db alive
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.TaskTemplate{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func mkUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		ID:       utils.GenerateID(),
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func mkTask(t *testing.T, db *gorm.DB, owner string, mutate func(*models.Task)) models.Task {
	t.Helper()
	task := models.Task{
		ID:        utils.GenerateID(),
		Title:     "task",
		Priority:  models.PriorityMedium,
		Category:  "General",
		Status:    models.StatusTodo,
		CreatedBy: owner,
	}
	if mutate != nil {
		mutate(&task)
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func reloadUser(t *testing.T, db *gorm.DB, id string) models.User {
	t.Helper()
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return user
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
