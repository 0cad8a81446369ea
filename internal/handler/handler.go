package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"mindful/backend/internal/auth"
	"mindful/backend/internal/media"
	"mindful/backend/internal/service"
	"mindful/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler holds everything the HTTP endpoints need.
type Handler struct {
	DB        *gorm.DB
	Accounts  *service.AccountService
	Catalog   *service.CatalogService
	Sessions  *service.SessionService
	Playlists *service.PlaylistService
	Friends   *service.FriendshipService

	Tokens *jwt.Issuer
	Logins auth.SessionStore
	// Uploader is nil when no object store is configured.
	Uploader media.Uploader

	MediaBaseURL  string
	SessionTTL    time.Duration
	SecureCookies bool

	Log *zap.Logger
}

// New wires the services over db.
func New(db *gorm.DB, tokens *jwt.Issuer, logins auth.SessionStore, log *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Accounts:     service.NewAccountService(db),
		Catalog:      service.NewCatalogService(db),
		Sessions:     service.NewSessionService(db),
		Playlists:    service.NewPlaylistService(db),
		Friends:      service.NewFriendshipService(db),
		Tokens:       tokens,
		Logins:       logins,
		MediaBaseURL: media.DefaultBaseURL,
		SessionTTL:   14 * 24 * time.Hour,
		Log:          log,
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is the body of most friend-request answers.
type MessageResponse struct {
	Message string `json:"message" example:"Friend request sent."`
}

// FieldErrors maps input field names to their messages.
type FieldErrors map[string][]string

func init() {
	// Report validation failures under the JSON field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON binds the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return false
	}
	return true
}

func bindingErrors(err error) interface{} {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := FieldErrors{}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}
		return fields
	}
	return gin.H{"detail": "JSON parse error - " + err.Error()}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

// fail maps a service error onto a response. Unknown errors are logged and
// hidden behind a generic 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if ve, ok := service.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, FieldErrors(ve.Fields))
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotFriends):
		c.Status(http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid action."})
	case errors.Is(err, service.ErrAlreadySent):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Friend request already sent."})
	case errors.Is(err, service.ErrAlreadyResponded):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Friend request already responded to."})
	default:
		h.Log.Error("request failed", append(callerFields(c),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)...)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// audit records a catalog change together with who made it.
func (h *Handler) audit(c *gin.Context, msg string, fields ...zap.Field) {
	h.Log.Info(msg, append(callerFields(c), fields...)...)
}

func callerFields(c *gin.Context) []zap.Field {
	if id, ok := auth.UserIDFromContext(c.Request.Context()); ok {
		return []zap.Field{zap.Uint("user_id", id)}
	}
	return []zap.Field{zap.Bool("anonymous", true)}
}

// pathID parses a numeric path parameter. Anything else is a 404, as the
// route would not have matched.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// callerID returns the authenticated user. Routes using it sit behind the
// auth middleware, so a miss is a wiring bug.
func callerID(c *gin.Context) (uint, bool) {
	id, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
	}
	return id, ok
}
