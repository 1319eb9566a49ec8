package handlers

import (
	"errors"
	"net/http"
	request "plan_appetit/internal/adapter/http/dto/request"
	response "plan_appetit/internal/adapter/http/dto/response"
	"plan_appetit/internal/usecase"
	"plan_appetit/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecipePayload = pkg.NewDomainErrorSimple("INVALID_RECIPE_INPUT", "Invalid recipe payload", http.StatusBadRequest)
)

type RecipeHandler struct {
	usecase usecase.IRecipeUseCase
}

func NewRecipeHandler(uc usecase.IRecipeUseCase) *RecipeHandler {
	return &RecipeHandler{usecase: uc}
}

// GenerateRecipe godoc
// @Summary      Generate a recipe through the recipe backend
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      request.RecipeRequest  true  "Dish and covers"
// @Success      200   {object}  response.RecipeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /recipes [post]
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var payload request.RecipeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecipePayload.HTTPStatus, errInvalidRecipePayload.ToHTTPError())
		return
	}

	recipe, err := h.usecase.Generate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecipe(recipe))
}

func mapRecipeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipeRequest):
		return errInvalidRecipePayload
	case errors.Is(err, usecase.ErrRecipeBackendNotConfigured):
		return pkg.NewDomainErrorSimple("RECIPE_BACKEND_UNAVAILABLE", "Recipe generation is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("RECIPE_BACKEND_ERROR", "Recipe backend failed", err, http.StatusBadGateway)
	}
}
