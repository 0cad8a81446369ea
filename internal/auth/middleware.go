package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mindful/backend/internal/models"
	"mindful/backend/internal/service"
	"mindful/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionCookie names the cookie that carries the login session id.
const SessionCookie = "sessionid"

const userIDKey = "userID"

type ctxKey struct{}

var (
	errNoCredentials = errors.New("no credentials")
	errBadToken      = errors.New("invalid token")
	errUnknownUser   = errors.New("user not found")
	errInactiveUser  = errors.New("user is inactive")
)

const (
	msgNoCredentials = "Authentication credentials were not provided."
	msgBadToken      = "Given token not valid for any token type"
	msgForbidden     = "You do not have permission to perform this action."
	msgUnknownUser   = "User not found"
	msgInactiveUser  = "User is inactive"
)

// Authenticator resolves the caller from a bearer access token or a login
// session cookie. The resolved account must still exist and be active.
type Authenticator struct {
	tokens   *jwt.Issuer
	sessions SessionStore
	users    UserLookup
}

func NewAuthenticator(tokens *jwt.Issuer, sessions SessionStore, users UserLookup) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions, users: users}
}

func (a *Authenticator) resolve(c *gin.Context) (uint, error) {
	id, err := a.principal(c)
	if err != nil {
		return 0, err
	}

	user, err := a.users.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return 0, errUnknownUser
	case err != nil:
		return 0, err
	case !user.IsActive:
		return 0, errInactiveUser
	}
	return id, nil
}

func (a *Authenticator) principal(c *gin.Context) (uint, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return 0, errBadToken
		}
		claims, err := a.tokens.Parse(parts[1], jwt.AccessToken)
		if err != nil {
			return 0, errBadToken
		}
		id, err := claims.UserID()
		if err != nil {
			return 0, errBadToken
		}
		return id, nil
	}

	if a.sessions != nil {
		if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
			id, err := a.sessions.Lookup(c.Request.Context(), sid)
			if err == nil {
				return id, nil
			}
			if !errors.Is(err, ErrSessionNotFound) {
				return 0, err
			}
		}
	}
	return 0, errNoCredentials
}

// Middleware rejects requests without a valid principal.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := a.resolve(c)
		switch {
		case errors.Is(err, errNoCredentials):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgNoCredentials})
			return
		case errors.Is(err, errBadToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgBadToken})
			return
		case errors.Is(err, errUnknownUser):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgUnknownUser})
			return
		case errors.Is(err, errInactiveUser):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgInactiveUser})
			return
		case err != nil:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		setUser(c, userID)
		c.Next()
	}
}

// OptionalMiddleware sets the principal when one is present and valid, but
// never rejects the request.
func (a *Authenticator) OptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := a.resolve(c); err == nil {
			setUser(c, userID)
		}
		c.Next()
	}
}

func setUser(c *gin.Context, userID uint) {
	c.Set(userIDKey, userID)
	c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
}

// CurrentUserID returns the authenticated user's id for this request.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// WithUserID attaches the principal to ctx.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext reads the principal set by WithUserID.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ctxKey{}).(uint)
	return id, ok
}

// UserLookup loads a user by id.
type UserLookup interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// StaffMiddleware requires an authenticated staff user.
// It must be used AFTER Middleware.
func StaffMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgNoCredentials})
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil || !user.IsActive || !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": msgForbidden})
			return
		}
		c.Next()
	}
}
