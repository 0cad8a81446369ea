package handler

import (
	"errors"
	"net/http"
	"time"

	"mindful/backend/internal/auth"
	"mindful/backend/internal/models"
	"mindful/backend/internal/service"
	"mindful/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

// SignupInput defines the structure for user registration.
type SignupInput struct {
	Email       string  `json:"email" binding:"required,email,max=254" example:"alice@example.com"`
	Password    string  `json:"password" binding:"required" example:"password123"`
	FirstName   string  `json:"first_name" binding:"required,max=50" example:"Alice"`
	LastName    string  `json:"last_name" binding:"required,max=50" example:"Liddell"`
	Username    *string `json:"username" binding:"omitempty,max=30" example:"alice"`
	Nationality *string `json:"nationality" binding:"omitempty,max=50" example:"British"`
	IsSuperuser bool    `json:"is_superuser"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshInput carries the refresh token to exchange.
type RefreshInput struct {
	Refresh string `json:"refresh" example:"eyJhbGciOi..."`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID          uint       `json:"id" example:"1"`
	Email       string     `json:"email" example:"alice@example.com"`
	FirstName   string     `json:"first_name" example:"Alice"`
	LastName    string     `json:"last_name" example:"Liddell"`
	Username    *string    `json:"username"`
	Nationality *string    `json:"nationality"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `json:"date_joined"`
}

func newUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Nationality: u.Nationality,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		LastLogin:   u.LastLogin,
		DateJoined:  u.CreatedAt,
	}
}

func newUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Message string       `json:"message" example:"User created successfully"`
	User    UserResponse `json:"user"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string        `json:"message" example:"Login successful"`
	User    UserResponse  `json:"user"`
	Tokens  jwt.TokenPair `json:"tokens"`
}

// AccessResponse carries a freshly minted access token.
type AccessResponse struct {
	Access string `json:"access"`
}

// endregion

// region --- Auth Handlers ---

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a user with a hashed password. A superuser is also staff.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SignupInput true "Registration Info"
// @Success      201  {object}  SignupResponse
// @Failure      400  {object}  FieldErrors
// @Failure      500  {object}  ErrorResponse
// @Router       /signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.Accounts.Signup(c.Request.Context(), service.SignupInput{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Username:    input.Username,
		Nationality: input.Nationality,
		IsSuperuser: input.IsSuperuser,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Log.Info("user signed up", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusCreated, SignupResponse{Message: "User created successfully", User: newUserResponse(*user)})
}

// Login godoc
// @Summary      Log in a user
// @Description  Checks credentials, starts a login session (sessionid cookie) and returns a JWT pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  FieldErrors "Invalid email or password"
// @Failure      500  {object}  ErrorResponse
// @Router       /login/ [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	user, err := h.Accounts.Authenticate(ctx, input.Email, input.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, FieldErrors{"non_field_errors": {"Invalid email or password."}})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.Accounts.RecordLogin(ctx, user); err != nil {
		h.fail(c, err)
		return
	}

	tokens, err := h.Tokens.GeneratePair(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	// The session is the last thing that can fail, so no cookie or row
	// outlives an error response.
	if h.Logins != nil {
		sid, err := h.Logins.Create(ctx, user.ID, h.SessionTTL)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(auth.SessionCookie, sid, int(h.SessionTTL.Seconds()), "/", "", h.SecureCookies, true)
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", User: newUserResponse(*user), Tokens: tokens})
}

// RefreshToken godoc
// @Summary      Refresh the access token
// @Description  Exchanges a refresh token for a new access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RefreshInput true "Refresh token"
// @Success      200  {object}  AccessResponse
// @Failure      400  {object}  ErrorResponse "Refresh token is required"
// @Failure      401  {object}  ErrorResponse "Token is invalid or expired"
// @Router       /refresh-token/ [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var input RefreshInput
	// A missing or malformed body is reported as a missing token.
	_ = c.ShouldBindJSON(&input)
	if input.Refresh == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Refresh token is required"})
		return
	}

	access, err := h.Tokens.Refresh(input.Refresh)
	if err != nil {
		msg := "Token is invalid or expired"
		if errors.Is(err, jwt.ErrWrongTokenType) {
			msg = "Token has wrong type"
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, AccessResponse{Access: access})
}

// Logout godoc
// @Summary      Log out
// @Description  Ends the login session named by the sessionid cookie. Issued JWTs stay valid until they expire.
// @Tags         auth
// @Success      204
// @Router       /logout/ [post]
func (h *Handler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(auth.SessionCookie); err == nil && sid != "" && h.Logins != nil {
		if err := h.Logins.Delete(c.Request.Context(), sid); err != nil {
			h.Log.Warn("failed to delete login session", zap.Error(err))
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.SecureCookies, true)
	c.Status(http.StatusNoContent)
}

// endregion

// GetMe godoc
// @Summary      Get current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me/ [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	user, err := h.Accounts.Get(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}
