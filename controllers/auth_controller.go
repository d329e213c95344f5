package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/models"
	"github.com/Juggernaut7/Task-Tidy/services"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

// AuthController handles registration, login and the profile endpoints.
type AuthController struct{}

// Register creates an account and returns it with a fresh token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := config.DB.Where("email = ? OR username = ?", email, req.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email or username already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, "register lookup failed", err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, "password hash failed", err)
		return
	}

	user := models.User{
		ID:        utils.GenerateID(),
		Username:  req.Username,
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Preferences: models.Preferences{
			Theme:           "auto",
			DefaultView:     "list",
			DefaultPriority: models.PriorityMedium,
			DefaultCategory: "General",
			Notifications:   models.Notifications{Email: true, Push: true, Reminders: true},
			Timezone:        "UTC",
			Language:        "en",
		},
	}

	if err := config.DB.Create(&user).Error; err != nil {
		serverError(c, "user create failed", err, "username", req.Username)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		serverError(c, "token generation failed", err, "userID", user.ID)
		return
	}

	config.Logger.Infow("user registered", "userID", user.ID, "username", user.Username)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    models.NewUserResponse(user),
		"token":   token,
	})
}

// Login verifies credentials, records activity and returns a token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	now := time.Now()
	if err := services.TouchActivity(config.DB, &user, now); err != nil {
		serverError(c, "activity update failed", err, "userID", user.ID)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		serverError(c, "token generation failed", err, "userID", user.ID)
		return
	}

	// Reflect the touch in the response without a reload.
	user.Stats.LastActiveDate = &now

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    models.NewUserResponse(user),
		"token":   token,
	})
}

// GetProfile returns the caller's account.
func (ac *AuthController) GetProfile(c *gin.Context) {
	uid, _ := identity(c)

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateProfile applies a partial update to names, avatar and preferences.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	uid, _ := identity(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	}

	if err := config.DB.Save(&user).Error; err != nil {
		serverError(c, "profile update failed", err, "userID", uid)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    models.NewUserResponse(user),
	})
}
