package http

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "feedstream/backend/docs"
	"feedstream/backend/internal/handler"
)

// FeedBasePath is where the feed entry resource is mounted.
const FeedBasePath = "/feed"

func NewRouter(
	feedEntryHandler *handler.FeedEntryHandler,
	healthHandler *handler.HealthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// /feed and /feed/1 are routed as /feed/ and /feed/1/.
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return !isFeedPath(c.Request().URL.Path)
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(CORSMiddleware())
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler.RegisterRoutes(e)
	feedEntryHandler.RegisterRoutes(e.Group(FeedBasePath))

	return e
}

func isFeedPath(path string) bool {
	return path == FeedBasePath || strings.HasPrefix(path, FeedBasePath+"/")
}
