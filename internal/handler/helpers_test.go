package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindful/backend/internal/auth"
	"mindful/backend/internal/database"
	"mindful/backend/internal/service"
	"mindful/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "handler-test-secret-0123456789abcdef"

type fakeUploader struct {
	keys []string
	data []byte
}

func (f *fakeUploader) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	f.data = b
	return "https://minio.example.com/audio/" + key, nil
}

type testEnv struct {
	db     *gorm.DB
	h      *Handler
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	issuer := jwt.NewIssuer(testSecret, 5*time.Minute, 24*time.Hour)
	logins := auth.NewDBSessionStore(db)
	h := New(db, issuer, logins, zap.NewNop())
	h.MediaBaseURL = "https://cdn.example.com/"

	router := gin.New()
	h.RegisterRoutes(router, auth.NewAuthenticator(issuer, logins, h.Accounts), nil)
	return &testEnv{db: db, h: h, router: router}
}

type reqOpt func(*http.Request)

func withToken(token string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(c *http.Cookie) reqOpt {
	return func(r *http.Request) { r.AddCookie(c) }
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, opts ...reqOpt) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// user creates an account and returns its id and an access token.
func (e *testEnv) user(t *testing.T, name string, superuser bool) (uint, string) {
	t.Helper()
	u, err := e.h.Accounts.Signup(context.Background(), service.SignupInput{
		Email:       fmt.Sprintf("%s@example.com", name),
		Password:    "password123",
		FirstName:   name,
		LastName:    "Tester",
		IsSuperuser: superuser,
	})
	require.NoError(t, err)
	token, err := e.h.Tokens.GenerateToken(u.ID, jwt.AccessToken)
	require.NoError(t, err)
	return u.ID, token
}

// sessionCookie returns the login session cookie set on w.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	require.FailNow(t, "no session cookie set")
	return nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
