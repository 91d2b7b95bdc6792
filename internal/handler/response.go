package handler

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"
	"github.com/labstack/echo/v4"

	"feedstream/backend/internal/logger"
)

// HeaderFeedMessage carries the explanation on responses that cannot have
// a body, such as 304 Not Modified.
const HeaderFeedMessage = "X-Feed-Message"

// JSON comes first so it wins for */* and a missing Accept header.
var representations = []contenttype.MediaType{
	contenttype.NewMediaType(echo.MIMEApplicationJSON),
	contenttype.NewMediaType(echo.MIMEApplicationXML),
	contenttype.NewMediaType(echo.MIMETextXML),
}

type errorResponse struct {
	Error string `json:"error" xml:"error"`
}

// writeServiceError answers with a logged 500. Expected outcomes such as a
// missing entry are handled by the caller before it gets here.
func writeServiceError(c echo.Context, err error) error {
	logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// bindBody decodes a JSON or XML request body chosen by Content-Type.
// Other content types, forms included, are rejected. Path and query
// parameters are never bound.
func bindBody(c echo.Context, v any) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON),
		strings.HasPrefix(ctype, echo.MIMEApplicationXML),
		strings.HasPrefix(ctype, echo.MIMETextXML):
		return new(echo.DefaultBinder).BindBody(c, v)
	default:
		return echo.ErrUnsupportedMediaType
	}
}

func writeBindError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
		return c.JSON(http.StatusUnsupportedMediaType, errorResponse{Error: "unsupported media type"})
	}
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
}

// render writes jsonBody or xmlBody depending on the Accept header.
// Lists need a different root shape in XML, hence two bodies.
func render(c echo.Context, status int, jsonBody, xmlBody any) error {
	switch negotiate(c.Request()) {
	case echo.MIMEApplicationXML:
		return c.XML(status, xmlBody)
	case echo.MIMETextXML:
		out, err := xml.Marshal(xmlBody)
		if err != nil {
			return err
		}
		return c.Blob(status, echo.MIMETextXMLCharsetUTF8, append([]byte(xml.Header), out...))
	default:
		return c.JSON(status, jsonBody)
	}
}

// negotiate picks the representation the Accept header prefers. JSON is
// the fallback for missing, malformed or unsatisfiable headers.
func negotiate(req *http.Request) string {
	mediaType, _, err := contenttype.GetAcceptableMediaType(req, representations)
	if err != nil {
		return echo.MIMEApplicationJSON
	}
	return mediaType.String()
}
