package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"feedstream/backend/internal/logger"
)

// AllowedMethods is advertised on every response.
const AllowedMethods = "GET, POST, OPTIONS, PUT, DELETE"

// CORSMiddleware marks every response as readable from any origin. Headers
// the client asked to send in Access-Control-Request-Headers are echoed back.
// Headers are set before the handler runs so error responses carry them too.
func CORSMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			header.Set(echo.HeaderAccessControlAllowMethods, AllowedMethods)

			requested := c.Request().Header.Get(echo.HeaderAccessControlRequestHeaders)
			if strings.TrimSpace(requested) != "" {
				header.Set(echo.HeaderAccessControlAllowHeaders, requested)
			}

			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status

			log, result := logger.Debug, "ok"
			switch {
			case status >= 500:
				log, result = logger.Error, "failed"
			case status >= 400:
				log, result = logger.Warn, "failed"
			}

			log("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			return nil
		}
	}
}
