package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scribe/internal/repository"
	"scribe/internal/resource"
	"scribe/internal/service"
)

// UserHandler handles user CRUD plus the nested posts/comments listings.
type UserHandler struct {
	userService    service.UserService
	postService    service.PostService
	commentService service.CommentService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, postService service.PostService, commentService service.CommentService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
}

// ListUsersRequest represents the user listing query parameters.
type ListUsersRequest struct {
	PageQuery
	Name  string `query:"name"`
	Email string `query:"email" validate:"omitempty,email"`
}

// UpdateUserRequest represents a user update payload.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param name query string false "Name substring filter"
// @Param email query string false "Email substring filter"
// @Success 200 {object} resource.Paginated[*resource.User]
// @Failure 422 {object} errors.ValidationResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	filter := repository.UserFilter{}
	if req.Name != "" {
		filter.Name = &req.Name
	}
	if req.Email != "" {
		filter.Email = &req.Email
	}

	page := pageOf(req.Page, req.PerPage)
	users, total, err := h.userService.List(c.Request().Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewUserCollection(users), page, total, c.Request().URL.Path))
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterRequest true "User data"
// @Success 201 {object} DataResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.Create(c.Request().Context(), service.CreateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		SkipBreachCheck: isPrecognitive(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: resource.NewUser(user)})
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("user not found")
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewUser(user)})
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "User data"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("user not found")
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err = h.userService.Update(c.Request().Context(), user, req.Name, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: resource.NewUser(user)})
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("user not found")
	}
	if _, err := h.userService.Get(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Posts godoc
// @Summary List a user's posts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} resource.Paginated[*resource.Post]
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/posts [get]
func (h *UserHandler) Posts(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("user not found")
	}
	if _, err := h.userService.Get(c.Request().Context(), id); err != nil {
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
	posts, total, err := h.postService.ListByUser(c.Request().Context(), id, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewPostCollection(posts, false), page, total, c.Request().URL.Path))
}

// Comments godoc
// @Summary List a user's comments
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} resource.Paginated[*resource.Comment]
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/comments [get]
func (h *UserHandler) Comments(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound("user not found")
	}
	if _, err := h.userService.Get(c.Request().Context(), id); err != nil {
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
	comments, total, err := h.commentService.ListByUser(c.Request().Context(), id, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resource.NewPaginated(resource.NewCommentCollection(comments, false), page, total, c.Request().URL.Path))
}
