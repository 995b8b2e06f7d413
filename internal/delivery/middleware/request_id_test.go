package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "campnav/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, fromCtx
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	rec, fromCtx := runRequestID(t, "client-abc")

	assert.Equal(t, "client-abc", fromCtx)
	assert.Equal(t, "client-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	for _, header := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		rec, fromCtx := runRequestID(t, header)

		assert.Len(t, fromCtx, 36)
		assert.Equal(t, fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}
