package routes

import (
	"plan_appetit/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfigurations = "/configurations"
	PathStatistics     = "/statistics"
	PathLastViewed     = "/last-viewed"
	PathRecipes        = "/recipes"
	PathPing           = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addConfigurationRoutes(rg *gin.RouterGroup, configurationHandler *handlers.ConfigurationHandler, statisticsHandler *handlers.StatisticsHandler) {
	configurations := rg.Group(PathConfigurations)
	{
		configurations.GET("", configurationHandler.ListConfigurations)
		configurations.POST("", configurationHandler.CreateConfiguration)
		configurations.GET("/:uuid", configurationHandler.GetConfiguration)
		configurations.PUT("/:uuid", configurationHandler.UpdateConfiguration)
		configurations.DELETE("/:uuid", configurationHandler.DeleteConfiguration)
		configurations.PATCH("/:uuid/name", configurationHandler.RenameConfiguration)
		configurations.GET("/:uuid/statistics", statisticsHandler.GetConfigurationStatistics)
	}

	lastViewed := rg.Group(PathLastViewed)
	{
		lastViewed.GET("", configurationHandler.GetLastViewed)
		lastViewed.PUT("", configurationHandler.SetLastViewed)
	}
}

func addStatisticsRoutes(rg *gin.RouterGroup, statisticsHandler *handlers.StatisticsHandler) {
	rg.POST(PathStatistics, statisticsHandler.ComputeStatistics)
}

func addRecipeRoutes(rg *gin.RouterGroup, recipeHandler *handlers.RecipeHandler) {
	rg.POST(PathRecipes, recipeHandler.GenerateRecipe)
}
