package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/errors"
	"pressroom/internal/service"
)

// ArticleHandler bundles the articles resource.
type ArticleHandler struct {
	svc service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ArticleRequest represents a create/update article payload. TagIDs is the
// full desired tag set for the article.
type ArticleRequest struct {
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	CategoryID uint   `json:"category_id" validate:"required"`
	TagIDs     []uint `json:"tag_ids"`
}

func (r ArticleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:      r.Title,
		Body:       r.Body,
		CategoryID: r.CategoryID,
		TagIDs:     r.TagIDs,
	}
}

// CreateArticle godoc
// @Summary Create article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body ArticleRequest true "Article payload"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.svc.CreateArticle(c.Request().Context(), req.input())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetArticle godoc
// @Summary Get article by id
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	article, err := h.svc.GetArticle(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, article)
}

// ListArticles godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles, err := h.svc.ListArticles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, articles)
}

// UpdateArticle godoc
// @Summary Update article and reconcile its tag set
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body ArticleRequest true "Article payload"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateArticle(c.Request().Context(), id, req.input())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteArticle godoc
// @Summary Delete article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 204 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteArticle(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
