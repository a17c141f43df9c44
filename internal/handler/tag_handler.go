package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/errors"
	"pressroom/internal/service"
)

// TagHandler bundles the tags resource.
type TagHandler struct {
	svc service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// TagRequest represents a create/update tag payload.
type TagRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateTag godoc
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body TagRequest true "Tag payload"
// @Success 201 {object} model.Tag
// @Failure 400 {object} errors.ErrorResponse
// @Router /tags [post]
func (h *TagHandler) CreateTag(c echo.Context) error {
	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.svc.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetTag godoc
// @Summary Get tag by id
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} model.Tag
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	tag, err := h.svc.GetTag(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tag)
}

// ListTags godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} model.Tag
// @Router /tags [get]
func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.svc.ListTags(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tags)
}

// UpdateTag godoc
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body TagRequest true "Tag payload"
// @Success 200 {object} model.Tag
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/{id} [put]
func (h *TagHandler) UpdateTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateTag(c.Request().Context(), id, req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTag godoc
// @Summary Delete tag and its article associations
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 204 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteTag(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
