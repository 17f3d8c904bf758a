package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "scribe/internal/errors"
	"scribe/internal/repository"
)

// DataResponse wraps a single resource under a data key.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// respondError renders service and validation errors in the shapes the API
// promises: 422 with the field-keyed envelope, 404/500 with the error-code
// body.
func respondError(c echo.Context, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ValidationResponse{Errors: ve.Fields})
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID resolves the numeric id path segment. Anything that is not a
// positive integer cannot name a row, so it reports not-found rather than
// bad-request, matching lookup-or-fail semantics.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(message string) error {
	return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
		Error: message,
		Code:  "NOT_FOUND",
	})
}

// pageOf converts already-validated page/per_page strings into a Page.
func pageOf(pageStr, perPageStr string) repository.Page {
	page, _ := strconv.Atoi(pageStr)
	perPage, _ := strconv.Atoi(perPageStr)
	return repository.Page{Number: page, Size: perPage}.Normalize()
}

// PageQuery carries the pagination query parameters shared by list endpoints.
type PageQuery struct {
	Page    string `query:"page" validate:"omitempty,integer"`
	PerPage string `query:"per_page" validate:"omitempty,integer"`
}
