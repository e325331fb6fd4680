package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitflow/fitness-app/internal/ai"
	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// DietHandler serves diet-plan generation and retrieval.
type DietHandler struct {
	dietService service.DietService
}

// NewDietHandler creates a new DietHandler.
func NewDietHandler(dietService service.DietService) *DietHandler {
	return &DietHandler{dietService: dietService}
}

type GenerateDietPlanRequest struct {
	Age         int     `json:"age" binding:"required,gte=13,lte=120"`
	Weight      float64 `json:"weight" binding:"required,gt=0"`
	FitnessGoal string  `json:"fitnessGoal" binding:"required,oneof=weight_loss muscle_gain maintenance athletic_performance"`
	Allergies   string  `json:"allergies"`
}

// Generate godoc
// @Summary Generate a personalized diet plan
// @Description Delegates plan creation to the AI model and persists the result.
// @Tags Diet
// @Accept json
// @Produce json
// @Param profile body GenerateDietPlanRequest true "Profile attributes the plan is built from"
// @Success 201 {object} domain.DietPlan
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 502 {object} gin.H "Model returned an unusable plan"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /diet/generate [post]
func (h *DietHandler) Generate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req GenerateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.dietService.GeneratePlan(c.Request.Context(), userID, ai.DietPlanRequest{
		Age:         req.Age,
		Weight:      req.Weight,
		FitnessGoal: req.FitnessGoal,
		Allergies:   req.Allergies,
	})
	if err != nil {
		if errors.Is(err, ai.ErrMalformedCompletion) {
			abortWithError(c, http.StatusBadGateway, "The AI service returned an unusable diet plan, please retry")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate diet plan")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// Plans returns all diet plans of the authenticated user, oldest first.
func (h *DietHandler) Plans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plans, err := h.dietService.Plans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch diet plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ActivePlan returns the user's active diet plan, or a JSON null body when no
// plan is active.
func (h *DietHandler) ActivePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plan, err := h.dietService.ActivePlan(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch active diet plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}
