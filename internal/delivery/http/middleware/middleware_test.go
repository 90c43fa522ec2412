package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth map[string]int

func (s stubAuth) Authenticate(token string) (int, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, errors.New("bad token")
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	})
	return r
}

func serve(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	r := newEngine(NewAuthMiddleware(stubAuth{"good": 7}).OptionalAuth())

	w := serve(r, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, w.Body.String())

	w = serve(r, "Authorization", "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"ok":true}`, w.Body.String())

	w = serve(r, "Authorization", "Bearer forged")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, w.Body.String())

	w = serve(r, "Authorization", "Basic dXNlcjpwdw==")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID(base))
	r.GET("/whoami", func(c *gin.Context) {
		logger.From(c.Request.Context()).Info("inside")
		c.Status(http.StatusNoContent)
	})

	w := serve(r, "", "")
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request_id="+generated)

	known := uuid.NewString()
	w = serve(r, RequestIDHeader, known)
	assert.Equal(t, known, w.Header().Get(RequestIDHeader))

	w = serve(r, RequestIDHeader, "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID(base), Logging())
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	serve(r, "", "")
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/whoami")
}
