package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoIdentity is returned when no authenticated identity is attached to the request.
var ErrNoIdentity = errors.New("no authenticated identity in request context")

// CurrentUserID extracts the authenticated user's id from the request context.
// The JWT middleware stores the parsed token under the "user" key; validation
// and domain logic read the identity from here instead of trusting any
// client-supplied value.
func CurrentUserID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, ErrNoIdentity
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, ErrNoIdentity
	}
	return claims.UserID, nil
}
