package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "campnav/internal/delivery/context"
	domainerrors "campnav/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "r-1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"r-1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_Details(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", "field x"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "field x", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is rendered", func(t *testing.T) {
		c, rec := newContext()
		require.NoError(t, HandleAppError(c, errors.WithStack(domainerrors.ErrRoomNotFound)))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, domainerrors.ErrRoomNotFound.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrRoomNotFound.ErrorCode(), body.Error.Code)
	})

	t.Run("other errors are passed on", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("boom")
		err := HandleAppError(c, cause)

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}
