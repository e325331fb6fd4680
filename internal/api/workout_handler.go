package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the catalog and per-user session endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type LogWorkoutRequest struct {
	WorkoutID      string `json:"workoutId" binding:"required"`
	Duration       int    `json:"duration" binding:"omitempty,gte=0"`
	CaloriesBurned int    `json:"caloriesBurned" binding:"omitempty,gte=0"`
	Mood           string `json:"mood" binding:"omitempty,oneof=energetic happy motivated tired"`
	Notes          string `json:"notes"`
}

// ListWorkouts godoc
// @Summary List the workout catalog
// @Description Returns all catalog workouts, optionally filtered by category.
// @Tags Workouts
// @Produce json
// @Param category query string false "beginner | intermediate | advanced | all"
// @Success 200 {array} domain.Workout
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListCatalog(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one catalog workout by ID.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// LogWorkout records a completed session for the authenticated user. Hitting
// a workout-count milestone as a side effect awards an achievement.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.workoutService.LogWorkout(c.Request.Context(), userID, &domain.UserWorkout{
		WorkoutID:      req.WorkoutID,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Mood:           domain.WorkoutMood(req.Mood),
		Notes:          req.Notes,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to log workout")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// History returns the user's logged sessions, most recent first.
func (h *WorkoutHandler) History(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	sessions, err := h.workoutService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout history")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Stats returns aggregate totals over the user's logged sessions.
func (h *WorkoutHandler) Stats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	stats, err := h.workoutService.Stats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute workout stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
