package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindful/backend/internal/models"
	"mindful/backend/internal/service"
	"mindful/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-123456"

type memSessions map[string]uint

func (m memSessions) Create(_ context.Context, userID uint, _ time.Duration) (string, error) {
	id := "sid-" + string(rune('a'+len(m)))
	m[id] = userID
	return id, nil
}

func (m memSessions) Lookup(_ context.Context, id string) (uint, error) {
	if uid, ok := m[id]; ok {
		return uid, nil
	}
	return 0, ErrSessionNotFound
}

func (m memSessions) Delete(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

type stubUsers map[uint]*models.User

func (s stubUsers) Get(_ context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, service.ErrNotFound
}

type brokenUsers struct{}

func (brokenUsers) Get(context.Context, uint) (*models.User, error) {
	return nil, assert.AnError
}

func newRouter(a *Authenticator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{a.Middleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		ctxID, ctxOK := UserIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "ctx_id": ctxID, "ctx_ok": ctxOK})
	})
	r.GET("/me", handlers...)
	return r
}

func TestMiddleware(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, time.Minute, time.Hour)
	sessions := memSessions{}
	sid, err := sessions.Create(context.Background(), 7, time.Hour)
	require.NoError(t, err)
	inactiveSID, err := sessions.Create(context.Background(), 8, time.Hour)
	require.NoError(t, err)
	goneSID, err := sessions.Create(context.Background(), 99, time.Hour)
	require.NoError(t, err)

	users := stubUsers{
		7:  {IsActive: true},
		8:  {IsActive: false},
		42: {IsActive: true},
	}
	a := NewAuthenticator(issuer, sessions, users)
	router := newRouter(a)

	access, err := issuer.GenerateToken(42, jwt.AccessToken)
	require.NoError(t, err)
	refresh, err := issuer.GenerateToken(42, jwt.RefreshToken)
	require.NoError(t, err)
	inactive, err := issuer.GenerateToken(8, jwt.AccessToken)
	require.NoError(t, err)
	deleted, err := issuer.GenerateToken(99, jwt.AccessToken)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{"bearer access token", "Bearer " + access, "", http.StatusOK, `"id":42`},
		{"session cookie", "", sid, http.StatusOK, `"id":7`},
		{"bearer wins over cookie", "Bearer " + access, sid, http.StatusOK, `"ctx_id":42`},
		{"no credentials", "", "", http.StatusUnauthorized, "Authentication credentials were not provided."},
		{"unknown session", "", "nope", http.StatusUnauthorized, "Authentication credentials were not provided."},
		{"refresh token as access", "Bearer " + refresh, "", http.StatusUnauthorized, "Given token not valid"},
		{"malformed header", "Token " + access, "", http.StatusUnauthorized, "Given token not valid"},
		{"garbage token", "Bearer abc.def.ghi", "", http.StatusUnauthorized, "Given token not valid"},
		{"deactivated user token", "Bearer " + inactive, "", http.StatusUnauthorized, "User is inactive"},
		{"deactivated user session", "", inactiveSID, http.StatusUnauthorized, "User is inactive"},
		{"deleted user token", "Bearer " + deleted, "", http.StatusUnauthorized, "User not found"},
		{"deleted user session", "", goneSID, http.StatusUnauthorized, "User not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestMiddlewareUserLookupFailure(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, time.Minute, time.Hour)
	router := newRouter(NewAuthenticator(issuer, nil, brokenUsers{}))

	token, err := issuer.GenerateToken(1, jwt.AccessToken)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionalMiddleware(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, time.Minute, time.Hour)
	a := NewAuthenticator(issuer, nil, stubUsers{3: {IsActive: true}, 4: {IsActive: false}})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", a.OptionalMiddleware(), func(c *gin.Context) {
		_, ok := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"ok": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())

	token, err := issuer.GenerateToken(3, jwt.AccessToken)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	token, err = issuer.GenerateToken(4, jwt.AccessToken)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())
}

func TestStaffMiddleware(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, time.Minute, time.Hour)
	users := stubUsers{
		1: {IsActive: true, IsStaff: true},
		2: {IsActive: true},
		3: {IsActive: false, IsStaff: true},
	}
	router := newRouter(NewAuthenticator(issuer, nil, users), StaffMiddleware(users))

	// Inactive and unknown users never get past authentication.
	for id, want := range map[uint]int{1: http.StatusOK, 2: http.StatusForbidden, 3: http.StatusUnauthorized, 9: http.StatusUnauthorized} {
		token, err := issuer.GenerateToken(id, jwt.AccessToken)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "user %d", id)
	}
}
