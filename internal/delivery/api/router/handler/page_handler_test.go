package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPageHandler(t *testing.T) *PageHandler {
	h, err := NewPageHandler(PageHandlerParams{Logger: newDiscardLogger()})
	require.NoError(t, err)

	return h
}

func TestPageHandler_Login(t *testing.T) {
	h := newTestPageHandler(t)

	c, rec := newContext(http.MethodGet, "/login", "")
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="password"`)
	assert.Contains(t, rec.Body.String(), "/api/auth/login")
}

func TestPageHandler_Dashboard(t *testing.T) {
	h := newTestPageHandler(t)

	for _, section := range Sections {
		t.Run(section.Title, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, section.Path, "")
			c.SetParamNames("section")
			c.SetParamValues(section.Path[1:])
			require.NoError(t, h.Dashboard(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "<h1>"+section.Title+"</h1>")
			assert.Contains(t, rec.Body.String(), `data-resource="`+section.Resource+`"`)
		})
	}
}

func TestPageHandler_Dashboard_UnknownSection(t *testing.T) {
	h := newTestPageHandler(t)

	c, _ := newContext(http.MethodGet, "/campsites", "")
	c.SetParamNames("section")
	c.SetParamValues("campsites")
	err := h.Dashboard(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
