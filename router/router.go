package router

import (
	"kitchenbook-go-server/controllers/account"
	"kitchenbook-go-server/controllers/check"
	"kitchenbook-go-server/controllers/comments"
	"kitchenbook-go-server/controllers/home"
	"kitchenbook-go-server/controllers/ingredientCategories"
	"kitchenbook-go-server/controllers/ingredients"
	"kitchenbook-go-server/controllers/readProbe"
	"kitchenbook-go-server/controllers/recipeCategories"
	"kitchenbook-go-server/controllers/recipes"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/middleware"

	"github.com/gin-gonic/gin"
)

func Router() *gin.Engine {
	route := gin.Default()

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)
	route.GET("/", home.Stats)
	route.POST("/register", account.Register)

	api := route.Group("/api", middleware.TokenAuth())
	api.POST("/token-auth/", account.ObtainToken)
	api.GET("/profile/", middleware.RequireAuth(), account.Profile)

	recipesGroup := api.Group("/recipes", middleware.Authorize(enums.ResourceRecipes))
	recipesGroup.GET("", recipes.List)
	recipesGroup.POST("", recipes.Create)
	recipesGroup.GET("/:id", recipes.Get)
	recipesGroup.PUT("/:id", recipes.Update)
	recipesGroup.PATCH("/:id", recipes.Update)
	recipesGroup.DELETE("/:id", recipes.Delete)

	ingredientsGroup := api.Group("/ingredients", middleware.Authorize(enums.ResourceIngredients))
	ingredientsGroup.GET("", ingredients.List)
	ingredientsGroup.POST("", ingredients.Create)
	ingredientsGroup.GET("/:id", ingredients.Get)
	ingredientsGroup.PUT("/:id", ingredients.Update)
	ingredientsGroup.PATCH("/:id", ingredients.Update)
	ingredientsGroup.DELETE("/:id", ingredients.Delete)

	recipeCategoriesGroup := api.Group("/recipe-categories", middleware.Authorize(enums.ResourceRecipeCategories))
	recipeCategoriesGroup.GET("", recipeCategories.List)
	recipeCategoriesGroup.POST("", recipeCategories.Create)
	recipeCategoriesGroup.GET("/:id", recipeCategories.Get)
	recipeCategoriesGroup.PUT("/:id", recipeCategories.Update)
	recipeCategoriesGroup.PATCH("/:id", recipeCategories.Update)
	recipeCategoriesGroup.DELETE("/:id", recipeCategories.Delete)

	ingredientCategoriesGroup := api.Group("/ingredient-categories", middleware.Authorize(enums.ResourceIngredientCategories))
	ingredientCategoriesGroup.GET("", ingredientCategories.List)
	ingredientCategoriesGroup.POST("", ingredientCategories.Create)
	ingredientCategoriesGroup.GET("/:id", ingredientCategories.Get)
	ingredientCategoriesGroup.PUT("/:id", ingredientCategories.Update)
	ingredientCategoriesGroup.PATCH("/:id", ingredientCategories.Update)
	ingredientCategoriesGroup.DELETE("/:id", ingredientCategories.Delete)

	commentsGroup := api.Group("/comments", middleware.Authorize(enums.ResourceComments))
	commentsGroup.GET("", comments.List)
	commentsGroup.POST("", comments.Create)
	commentsGroup.GET("/:id", comments.Get)
	commentsGroup.PUT("/:id", comments.Update)
	commentsGroup.PATCH("/:id", comments.Update)
	commentsGroup.DELETE("/:id", comments.Delete)

	return route
}
