package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"feedstream/backend/internal/logger"
	"feedstream/backend/internal/service"
)

type FeedEntryHandler struct {
	service service.FeedEntryService
}

func NewFeedEntryHandler(service service.FeedEntryService) *FeedEntryHandler {
	return &FeedEntryHandler{service: service}
}

// RegisterRoutes expects paths to be normalised with a trailing slash.
func (h *FeedEntryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id/", h.GetByID)
	g.POST("/:id/", h.Update)
}

// List returns every feed entry.
// @Summary List feed entries
// @Description Get all feed entries. Order is by id. Responds with XML when asked for application/xml or text/xml.
// @Tags feed
// @Produce json
// @Produce xml
// @Success 200 {array} feedEntryPayload
// @Router /feed/ [get]
func (h *FeedEntryHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	payload := toFeedEntryListPayload(entries)
	return render(c, http.StatusOK, payload, feedEntryListPayload{Entries: payload})
}

// GetByID returns a single feed entry.
// @Summary Get feed entry
// @Description Get a feed entry by id. A missing entry and a malformed id both yield an empty 200 response.
// @Tags feed
// @Produce json
// @Produce xml
// @Param id path int true "Feed entry ID"
// @Success 200 {object} feedEntryPayload
// @Router /feed/{id}/ [get]
func (h *FeedEntryHandler) GetByID(c echo.Context) error {
	raw := c.Param("id")
	id, err := parseIDParam(c, "id")
	if err != nil {
		logger.Warn("feed entry id is not a valid key",
			"module", "handler",
			"action", "fetch",
			"resource", "feed_entry",
			"result", "failed",
			"id", raw,
			"error", err,
		)
		return c.NoContent(http.StatusOK)
	}

	entry, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debug("feed entry not found", "module", "handler", "action", "fetch", "resource", "feed_entry", "result", "ok", "id", id)
			return c.NoContent(http.StatusOK)
		}
		return writeServiceError(c, err)
	}

	payload := toFeedEntryPayload(entry)
	return render(c, http.StatusOK, payload, payload)
}

// Create stores a new feed entry.
// @Summary Create feed entry
// @Description Create a feed entry from a JSON or XML body. The Location header points at the new entry.
// @Tags feed
// @Accept json
// @Accept xml
// @Param entry body feedEntryPayload true "Feed entry"
// @Success 201 "Created"
// @Failure 400 {object} errorResponse
// @Failure 415 {object} errorResponse
// @Router /feed/ [post]
func (h *FeedEntryHandler) Create(c echo.Context) error {
	var req feedEntryPayload
	if err := bindBody(c, &req); err != nil {
		return writeBindError(c, err)
	}

	created, err := h.service.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return writeServiceError(c, err)
	}

	location, err := createdLocation(c, created.ID)
	if err != nil {
		location = c.Request().URL.Path
		logger.Warn("feed entry location fallback",
			"module", "handler",
			"action", "create",
			"resource", "feed_entry",
			"result", "failed",
			"id", created.ID,
			"location", location,
			"error", err,
		)
	}

	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.NoContent(http.StatusCreated)
}

// Update changes the fields present in the body and leaves the rest alone.
// The body is decoded before the lookup, so an undecodable body is a 400
// even for an unknown id.
// @Summary Update feed entry
// @Description Partially update a feed entry. Fields sent as JSON null are cleared. An unknown id yields 304 with the reason in X-Feed-Message; a malformed id yields 500. Only JSON and XML bodies are accepted.
// @Tags feed
// @Accept json
// @Accept xml
// @Param id path int true "Feed entry ID"
// @Param entry body feedEntryPatchPayload true "Fields to change"
// @Success 200 "OK"
// @Success 304 "Not Modified"
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /feed/{id}/ [post]
func (h *FeedEntryHandler) Update(c echo.Context) error {
	raw := c.Param("id")
	id, err := parseIDParam(c, "id")
	if err != nil {
		logger.Warn("feed entry id is not a valid key",
			"module", "handler",
			"action", "update",
			"resource", "feed_entry",
			"result", "failed",
			"id", raw,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: raw + " is not a valid key"})
	}

	var req feedEntryPatchPayload
	if err := bindBody(c, &req); err != nil {
		return writeBindError(c, err)
	}

	if _, err := h.service.Update(c.Request().Context(), id, req.toPatch()); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Warn("feed entry update skipped", "module", "handler", "action", "update", "resource", "feed_entry", "result", "failed", "id", id)
			c.Response().Header().Set(HeaderFeedMessage, raw+" does not exist")
			return c.NoContent(http.StatusNotModified)
		}
		return writeServiceError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// createdLocation builds the absolute URL of a new entry from the request URL.
func createdLocation(c echo.Context, id int64) (string, error) {
	req := c.Request()
	base := req.URL.Path
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(c.Scheme() + "://" + req.Host + base + strconv.FormatInt(id, 10))
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
