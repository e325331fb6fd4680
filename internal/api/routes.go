package api

import (
	"net/http"

	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts all API routes on the router. The catalog endpoints are
// public; everything user-scoped sits behind the JWT middleware.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	dietService service.DietService,
	chatService service.ChatService,
	trackingService service.TrackingService,
) {
	authHandler := NewAuthHandler(authService, profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	dietHandler := NewDietHandler(dietService)
	chatHandler := NewChatHandler(chatService)
	trackingHandler := NewTrackingHandler(trackingService)

	authMiddleware := AuthMiddleware(authService.GetJWTSecret())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The workout catalog is readable without an account.
		api.GET("/workouts", workoutHandler.ListWorkouts)
		api.GET("/workouts/:id", workoutHandler.GetWorkout)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/user", authHandler.GetCurrentUser)
		protected.PATCH("/auth/user", authHandler.UpdateProfile)
		protected.POST("/auth/user/avatar-url", authHandler.AvatarUploadURL)
		protected.GET("/auth/user/avatar-url", authHandler.AvatarDownloadURL)

		protected.POST("/workouts/log", workoutHandler.LogWorkout)
		protected.GET("/workouts/history", workoutHandler.History)
		protected.GET("/workouts/stats", workoutHandler.Stats)

		dietGroup := protected.Group("/diet")
		{
			dietGroup.POST("/generate", dietHandler.Generate)
			dietGroup.GET("/plans", dietHandler.Plans)
			dietGroup.GET("/active", dietHandler.ActivePlan)
		}

		protected.POST("/progress", trackingHandler.LogProgress)
		protected.GET("/progress", trackingHandler.Progress)
		protected.POST("/goals", trackingHandler.CreateGoal)
		protected.GET("/goals", trackingHandler.Goals)
		protected.PATCH("/goals/:id", trackingHandler.UpdateGoal)
		protected.GET("/achievements", trackingHandler.Achievements)

		protected.POST("/chat", chatHandler.SendMessage)
		protected.GET("/chat/history", chatHandler.History)
	}
}
