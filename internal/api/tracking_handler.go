package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves progress, goal and achievement endpoints.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

type LogProgressRequest struct {
	Weight           float64 `json:"weight" binding:"omitempty,gt=0"`
	CaloriesConsumed int     `json:"caloriesConsumed" binding:"omitempty,gte=0"`
	CaloriesBurned   int     `json:"caloriesBurned" binding:"omitempty,gte=0"`
	WaterIntake      float64 `json:"waterIntake" binding:"omitempty,gte=0"`
	Mood             string  `json:"mood"`
	EnergyLevel      int     `json:"energyLevel" binding:"omitempty,gte=1,lte=10"`
}

type CreateGoalRequest struct {
	Type        string     `json:"type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	TargetValue int        `json:"targetValue" binding:"omitempty,gte=0"`
	TargetDate  *time.Time `json:"targetDate"`
}

// UpdateGoalRequest carries a partial goal mutation. Absent fields are left
// untouched.
type UpdateGoalRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	TargetValue  *int       `json:"targetValue" binding:"omitempty,gte=0"`
	CurrentValue *int       `json:"currentValue" binding:"omitempty,gte=0"`
	TargetDate   *time.Time `json:"targetDate"`
	IsCompleted  *bool      `json:"isCompleted"`
}

// LogProgress records a daily-metrics entry for the authenticated user.
func (h *TrackingHandler) LogProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.trackingService.LogProgress(c.Request.Context(), userID, &domain.UserProgress{
		Weight:           req.Weight,
		CaloriesConsumed: req.CaloriesConsumed,
		CaloriesBurned:   req.CaloriesBurned,
		WaterIntake:      req.WaterIntake,
		Mood:             req.Mood,
		EnergyLevel:      req.EnergyLevel,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to log progress")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Progress returns recent progress entries, newest first. The optional ?days
// query parameter bounds the window.
func (h *TrackingHandler) Progress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	days := repository.DefaultProgressWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	entries, err := h.trackingService.Progress(c.Request.Context(), userID, days)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateGoal creates a goal for the authenticated user. New goals always
// start at zero progress and not completed.
func (h *TrackingHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.trackingService.CreateGoal(c.Request.Context(), userID, &domain.Goal{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// Goals returns all goals of the authenticated user.
func (h *TrackingHandler) Goals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	goals, err := h.trackingService.Goals(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateGoal applies a partial update to one of the caller's goals.
func (h *TrackingHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.trackingService.UpdateGoal(c.Request.Context(), userID, c.Param("id"), domain.GoalUpdate{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		TargetDate:   req.TargetDate,
		IsCompleted:  req.IsCompleted,
	})
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrGoalAccessDenied) {
			abortWithError(c, http.StatusForbidden, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Achievements returns every badge the user has earned.
func (h *TrackingHandler) Achievements(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	achievements, err := h.trackingService.Achievements(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	c.JSON(http.StatusOK, achievements)
}
