package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"scribe/internal/auth"
	apperrors "scribe/internal/errors"
	"scribe/internal/repository"
	"scribe/internal/resource"
	"scribe/internal/service"
	"scribe/internal/validation"
)

// PostHandler handles post CRUD and the nested comments listing.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPostsRequest represents the post listing query parameters. Numeric
// and boolean parameters arrive as strings so violations surface as 422s
// on the offending field instead of opaque bind failures.
type ListPostsRequest struct {
	PageQuery
	Title        string `query:"title"`
	Body         string `query:"body"`
	UserID       string `query:"user_id" validate:"omitempty,integer"`
	WithComments string `query:"with_comments"`
}

// PostRequest represents a post create/update payload. Any client-supplied
// user_id is discarded; authorship comes from the token.
type PostRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body" validate:"required,max=4096"`
}

// List godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param title query string false "Title substring filter"
// @Param body query string false "Body substring filter"
// @Param user_id query int false "Author id filter"
// @Param with_comments query bool false "Only posts with (true) or without (false) comments"
// @Success 200 {object} resource.Paginated[*resource.Post]
// @Failure 422 {object} errors.ValidationResponse
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var req ListPostsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	filter := repository.PostFilter{}
	if req.Title != "" {
		filter.Title = &req.Title
	}
	if req.Body != "" {
		filter.Body = &req.Body
	}
	if req.UserID != "" {
		id, _ := strconv.ParseUint(req.UserID, 10, 32)
		userID := uint(id)
		filter.UserID = &userID
	}
	if req.WithComments != "" {
		withComments, err := validation.ParseBool(req.WithComments)
		if err != nil {
			return respondError(c, apperrors.NewValidationError("with_comments", "The with comments field must be true or false."))
		}
		filter.WithComments = &withComments
	}

	page := pageOf(req.Page, req.PerPage)
	posts, total, err := h.postService.List(c.Request().Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewPostCollection(posts, true), page, total, c.Request().URL.Path))
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostRequest true "Post data"
// @Success 201 {object} DataResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req PostRequest
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

	post, err := h.postService.Create(c.Request().Context(), userID, req.Title, req.Body)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: resource.NewPost(post, true, false)})
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("post not found")
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewPost(post, true, false)})
}

// Update godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body PostRequest true "Post data"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("post not found")
	}
	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	post, err = h.postService.Update(c.Request().Context(), post, req.Title, req.Body)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewPost(post, true, false)})
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("post not found")
	}
	if _, err := h.postService.Get(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Comments godoc
// @Summary List a post's comments
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} resource.Paginated[*resource.Comment]
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *PostHandler) Comments(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("post not found")
	}
	if _, err := h.postService.Get(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	var req PageQuery
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	page := pageOf(req.Page, req.PerPage)
	comments, total, err := h.postService.Comments(c.Request().Context(), id, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewCommentCollection(comments, true), page, total, c.Request().URL.Path))
}
