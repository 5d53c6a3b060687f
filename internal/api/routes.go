package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	mealService service.MealService,
	goalService service.GoalService,
	dashboardService service.DashboardService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	mealHandler := NewMealHandler(mealService)
	goalHandler := NewGoalHandler(goalService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		userGroup := protected.Group("/users")
		{
			userGroup.GET("/profile", userHandler.GetProfile)
			userGroup.PUT("/profile", userHandler.UpdateProfile)
			userGroup.POST("/avatar", userHandler.UploadAvatar)
			userGroup.GET("/weight-history", userHandler.WeightHistory)
			userGroup.POST("/weight", userHandler.AddWeight)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			// Static segments before the :id wildcard.
			exerciseGroup.GET("/categories", exerciseHandler.Categories)
			exerciseGroup.GET("/muscle-groups", exerciseHandler.MuscleGroups)
			exerciseGroup.GET("/favorites", exerciseHandler.ListFavorites)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/favorite", exerciseHandler.ToggleFavorite)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/stats", workoutHandler.Stats)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/complete", workoutHandler.CompleteWorkout)
		}

		nutritionGroup := protected.Group("/nutrition")
		{
			nutritionGroup.GET("", mealHandler.ListMeals)
			nutritionGroup.GET("/stats", mealHandler.Stats)
			nutritionGroup.GET("/daily-summary", mealHandler.DailySummary)
			nutritionGroup.GET("/favorites", mealHandler.ListFavorites)
			nutritionGroup.POST("", mealHandler.CreateMeal)
			nutritionGroup.GET("/:id", mealHandler.GetMeal)
			nutritionGroup.PUT("/:id", mealHandler.UpdateMeal)
			nutritionGroup.DELETE("/:id", mealHandler.DeleteMeal)
			nutritionGroup.POST("/:id/favorite", mealHandler.ToggleFavorite)
		}

		goalGroup := protected.Group("/goals")
		{
			goalGroup.GET("", goalHandler.ListGoals)
			goalGroup.GET("/stats", goalHandler.Stats)
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.GET("/:id", goalHandler.GetGoal)
			goalGroup.PUT("/:id", goalHandler.UpdateGoal)
			goalGroup.DELETE("/:id", goalHandler.DeleteGoal)
			goalGroup.POST("/:id/progress", goalHandler.UpdateProgress)
			goalGroup.POST("/:id/milestones", goalHandler.AddMilestone)
			goalGroup.POST("/:id/milestones/:milestoneId/complete", goalHandler.CompleteMilestone)
			goalGroup.POST("/:id/reminders", goalHandler.AddReminder)
		}

		protected.GET("/dashboard", dashboardHandler.Summary)
	}
}
