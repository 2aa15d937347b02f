package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pawtrail/internal/config"
	"pawtrail/internal/token"
)

const testJWTSecret = "pawtrail_test_jwt_secret_key_1234567890"

var errFault = errors.New("store fault")

type fakeUploader struct {
	lastKey         string
	lastContentType string
	url             string
	err             error
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.lastKey = key
	f.lastContentType = contentType
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, body)
	return f.url, nil
}

func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock, *fakeUploader, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	tokens, err := token.NewManager(testJWTSecret)
	if err != nil {
		t.Fatalf("token.NewManager: %v", err)
	}

	blob := &fakeUploader{url: "http://blob.test/pawtrail/some/key"}
	cfg := &config.Config{Upload: config.UploadConfig{MaxBytes: 10 << 20}}
	h := New(db, tokens, blob, zerolog.Nop(), cfg)

	cleanup := func() {
		_ = db.Close()
	}

	return h, mock, blob, cleanup
}

func withTestUser(claims *token.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", claims)
		c.Next()
	}
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectHTTP200(t *testing.T, status int) {
	t.Helper()
	mustStatus(t, status, http.StatusOK)
}
