package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scribe/internal/auth"
	"scribe/internal/resource"
	"scribe/internal/service"
)

// CommentHandler handles comment CRUD.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a comment create payload. Any
// client-supplied user_id is discarded; authorship comes from the token.
type CreateCommentRequest struct {
	Body   string `json:"body" validate:"required"`
	PostID uint   `json:"post_id" validate:"required"`
}

// UpdateCommentRequest represents a comment update payload.
type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// List godoc
// @Summary List comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} resource.Paginated[*resource.Comment]
// @Router /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	var req PageQuery
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	page := pageOf(req.Page, req.PerPage)
	comments, total, err := h.commentService.List(c.Request().Context(), page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewCommentCollection(comments, false), page, total, c.Request().URL.Path))
}

// Create godoc
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} DataResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	comment, err := h.commentService.Create(c.Request().Context(), userID, req.PostID, req.Body)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: resource.NewComment(comment, false, false)})
}

// Get godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("comment not found")
	}

	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewComment(comment, false, false)})
}

// Update godoc
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body UpdateCommentRequest true "Comment data"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("comment not found")
	}
	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	comment, err = h.commentService.Update(c.Request().Context(), comment, req.Body)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewComment(comment, false, false)})
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("comment not found")
	}
	if _, err := h.commentService.Get(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	if err := h.commentService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
