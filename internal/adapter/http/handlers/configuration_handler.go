package handlers

import (
	"errors"
	"io"
	"net/http"
	request "plan_appetit/internal/adapter/http/dto/request"
	response "plan_appetit/internal/adapter/http/dto/response"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/usecase"
	"plan_appetit/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)
	errInvalidRenamePayload        = pkg.NewDomainErrorSimple("INVALID_NAME", "Name must not be blank", http.StatusBadRequest)
	errInvalidLastViewedPayload    = pkg.NewDomainErrorSimple("INVALID_LAST_VIEWED_INPUT", "Invalid last viewed payload", http.StatusBadRequest)
	errConfigurationNotFound       = pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Configuration not found", http.StatusNotFound)
)

// ConfigurationHandler exposes the configuration store over HTTP.
//
// GET keeps the store semantics: an unknown uuid answers with the first
// configuration. Rename never falls back and answers 404 on a miss.

type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

// ListConfigurations godoc
// @Summary      List configurations
// @Tags         configurations
// @Produce      json
// @Success      200  {array}   response.ConfigurationResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /configurations [get]
func (h *ConfigurationHandler) ListConfigurations(c *gin.Context) {
	configs, err := h.usecase.FetchAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromConfigurations(configs))
}

// CreateConfiguration godoc
// @Summary      Create a default configuration
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateConfigurationRequest  false  "Optional name"
// @Success      201   {object}  response.ConfigurationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations [post]
func (h *ConfigurationHandler) CreateConfiguration(c *gin.Context) {
	var payload request.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromConfiguration(created))
}

// GetConfiguration godoc
// @Summary      Get a configuration (falls back to the first one)
// @Tags         configurations
// @Produce      json
// @Param        uuid  path      string  true  "Configuration uuid"
// @Success      200   {object}  response.ConfigurationResponse
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations/{uuid} [get]
func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.usecase.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromConfiguration(cfg))
}

// UpdateConfiguration godoc
// @Summary      Replace or append a configuration
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        uuid  path      string                        true  "Configuration uuid"
// @Param        body  body      request.ConfigurationRequest  true  "Configuration"
// @Success      200   {object}  response.ConfigurationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations/{uuid} [put]
func (h *ConfigurationHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	cfg := payload.ToEntity(c.Param("uuid"))
	if cfg.UUID == "" {
		h.respondError(c, usecase.ErrInvalidConfigurationID)
		return
	}

	if _, err := h.usecase.Upsert(c.Request.Context(), cfg); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromConfiguration(cfg))
}

// DeleteConfiguration godoc
// @Summary      Delete every configuration with this uuid
// @Tags         configurations
// @Param        uuid  path  string  true  "Configuration uuid"
// @Success      204
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations/{uuid} [delete]
func (h *ConfigurationHandler) DeleteConfiguration(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RenameConfiguration godoc
// @Summary      Rename a configuration
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        uuid  path      string                              true  "Configuration uuid"
// @Param        body  body      request.RenameConfigurationRequest  true  "New name"
// @Success      200   {object}  response.ConfigurationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations/{uuid}/name [patch]
func (h *ConfigurationHandler) RenameConfiguration(c *gin.Context) {
	var payload request.RenameConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveName() == "" {
		c.JSON(errInvalidRenamePayload.HTTPStatus, errInvalidRenamePayload.ToHTTPError())
		return
	}

	target := entities.Configuration{UUID: strings.TrimSpace(c.Param("uuid"))}
	renamed, err := h.usecase.Rename(c.Request.Context(), target, payload.ResolveName())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if renamed == nil {
		c.JSON(errConfigurationNotFound.HTTPStatus, errConfigurationNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfiguration(*renamed))
}

// GetLastViewed godoc
// @Summary      Get the last viewed configuration uuid
// @Tags         last-viewed
// @Produce      json
// @Success      200  {object}  response.LastViewedResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /last-viewed [get]
func (h *ConfigurationHandler) GetLastViewed(c *gin.Context) {
	id, err := h.usecase.GetLastViewed(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.LastViewedResponse{UUID: id})
}

// SetLastViewed godoc
// @Summary      Record the last viewed configuration uuid
// @Tags         last-viewed
// @Accept       json
// @Produce      json
// @Param        body  body      request.LastViewedRequest  true  "Configuration uuid"
// @Success      200   {object}  response.LastViewedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /last-viewed [put]
func (h *ConfigurationHandler) SetLastViewed(c *gin.Context) {
	var payload request.LastViewedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLastViewedPayload.HTTPStatus, errInvalidLastViewedPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetLastViewed(c.Request.Context(), payload.UUID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.LastViewedResponse{UUID: payload.UUID})
}

func (h *ConfigurationHandler) respondError(c *gin.Context, err error) {
	appErr := mapConfigurationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfigurationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid configuration uuid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidName):
		return errInvalidRenamePayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
