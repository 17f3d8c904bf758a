package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"scribe/internal/auth"
	"scribe/internal/config"
	"scribe/internal/handler"
	"scribe/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = validation.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer token). Claims are parsed into
	// auth.Claims so handlers can read the authenticated identity.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// User routes
	secured.GET("/users", userHandler.List)
	secured.POST("/users", userHandler.Create)
	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete)
	secured.GET("/users/:id/posts", userHandler.Posts)
	secured.GET("/users/:id/comments", userHandler.Comments)

	// Post routes
	secured.GET("/posts", postHandler.List)
	secured.POST("/posts", postHandler.Create)
	secured.GET("/posts/:id", postHandler.Get)
	secured.PUT("/posts/:id", postHandler.Update)
	secured.DELETE("/posts/:id", postHandler.Delete)
	secured.GET("/posts/:id/comments", postHandler.Comments)

	// Comment routes
	secured.GET("/comments", commentHandler.List)
	secured.POST("/comments", commentHandler.Create)
	secured.GET("/comments/:id", commentHandler.Get)
	secured.PUT("/comments/:id", commentHandler.Update)
	secured.DELETE("/comments/:id", commentHandler.Delete)
}
