package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"feedstream/backend/internal/service"
)

func TestNegotiate(t *testing.T) {
	cases := map[string]string{
		"application/json":                 echo.MIMEApplicationJSON,
		"application/xml":                  echo.MIMEApplicationXML,
		"text/xml":                         echo.MIMETextXML,
		"text/html, application/xhtml+xml": echo.MIMEApplicationJSON,
		"*/*":                              echo.MIMEApplicationJSON,
		"application/json;q=0.5, text/xml": echo.MIMETextXML,
		"application/xml, application/json;q=0.9": echo.MIMEApplicationXML,
		"application/xml;q=0, application/json":   echo.MIMEApplicationJSON,
		"text/html,text/*;q=0.8":                  echo.MIMETextXML,
		"garbage;;;":                              echo.MIMEApplicationJSON,
	}
	for accept, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/feed/", nil)
		req.Header.Set(echo.HeaderAccept, accept)
		require.Equal(t, want, negotiate(req), "Accept: %q", accept)
	}

	require.Equal(t, echo.MIMEApplicationJSON, negotiate(httptest.NewRequest(http.MethodGet, "/feed/", nil)))
}

func TestBindBody_RejectsNonDocumentTypes(t *testing.T) {
	e := echo.New()
	for _, ctype := range []string{echo.MIMEApplicationForm, echo.MIMEMultipartForm, echo.MIMETextPlain, ""} {
		req := httptest.NewRequest(http.MethodPost, "/feed/", nil)
		req.Body = http.NoBody
		req.ContentLength = 1
		if ctype != "" {
			req.Header.Set(echo.HeaderContentType, ctype)
		}
		c := e.NewContext(req, httptest.NewRecorder())

		var payload feedEntryPayload
		require.ErrorIs(t, bindBody(c, &payload), echo.ErrUnsupportedMediaType, "Content-Type: %q", ctype)
	}
}

func TestWriteServiceError(t *testing.T) {
	e := echo.New()
	for _, err := range []error{errors.New("disk gone"), fmt.Errorf("wrapped: %w", service.ErrNotFound)} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/feed/", nil), rec)

		require.NoError(t, writeServiceError(c, err))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	}
}
