package routes

import (
	"github.com/aarusa/your-ai-meal-sub000/controllers"
	"github.com/aarusa/your-ai-meal-sub000/middlewares"
	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// shared session state and long-lived services
	hub := services.NewRealtimeHub()
	diaryStore := services.NewDiaryStore()
	pantryStore := services.NewPantryStore()
	recipeSvc := services.NewRecipeService(services.NewLLMService())
	planSvc := services.NewPlanService(recipeSvc, hub)

	diaryCtl := controllers.NewDiaryController(diaryStore, hub)
	pantryCtl := controllers.NewPantryController(pantryStore)
	recipeCtl := controllers.NewRecipeController(recipeSvc, pantryStore)
	planCtl := controllers.NewPlanController(planSvc, pantryStore)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		user := authed.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.GET("/calorie-target", controllers.GetCalorieTarget)
			user.GET("/preferences", controllers.GetPreferences)
			user.PUT("/preferences", controllers.UpdatePreferences)
		}

		food := authed.Group("/food")
		{
			food.GET("/search", controllers.SearchFoods)
			food.GET("/categories", controllers.ListFoodCategories)
			food.GET("/:id", controllers.GetFood)
		}

		pantry := authed.Group("/pantry")
		{
			pantry.GET("", pantryCtl.List)
			pantry.POST("", pantryCtl.Add)
			pantry.PUT("/:productId", pantryCtl.SetQuantity)
			pantry.DELETE("/:productId", pantryCtl.Remove)
			pantry.DELETE("", pantryCtl.Clear)
		}

		diary := authed.Group("/diary")
		{
			diary.GET("", diaryCtl.List)
			diary.POST("", diaryCtl.Add)
			diary.GET("/summary", diaryCtl.Summary)
			diary.DELETE("/:index", diaryCtl.Remove)
			diary.PUT("/:index/checked", diaryCtl.SetChecked)
		}

		api := authed.Group("/api")
		{
			api.POST("/ai/recipes", recipeCtl.Generate)

			tracking := api.Group("/meal-tracking")
			{
				tracking.GET("", controllers.ListMealLogs)
				tracking.POST("", controllers.AddMealLog)
				tracking.GET("/day-totals", controllers.MealLogDayTotals)
				tracking.GET("/:id", controllers.GetMealLog)
				tracking.PUT("/:id", controllers.UpdateMealLog)
				tracking.DELETE("/:id", controllers.DeleteMealLog)
			}

			meals := api.Group("/meals")
			{
				// static paths before :id so gin does not shadow them
				meals.GET("/stats", controllers.SavedMealStats)
				meals.GET("/categories", controllers.SavedMealCategories)
				meals.GET("/search", controllers.SearchSavedMeals)
				meals.GET("/recent", controllers.RecentSavedMeals)

				meals.GET("", controllers.ListSavedMeals)
				meals.GET("/:id", controllers.GetSavedMeal)
				meals.DELETE("/:id", controllers.DeleteSavedMeal)
				meals.PUT("/:id/status", controllers.SetSavedMealStatus)
				meals.PUT("/:id/rating", controllers.SetSavedMealRating)
				meals.PUT("/:id/favorite", controllers.SetSavedMealFavorite)
			}

			plan := api.Group("/plan")
			{
				plan.GET("/today", planCtl.Today)
				plan.POST("/regenerate", planCtl.Regenerate)
			}
		}

		authed.POST("/upload/image", controllers.UploadImage)
		authed.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
