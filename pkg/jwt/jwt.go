package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var (
	// ErrWrongTokenType is returned when a token of the other type is presented.
	ErrWrongTokenType = errors.New("token has wrong type")
	// ErrEmptySecret is returned when signing without a secret.
	ErrEmptySecret = errors.New("empty signing secret")
)

// Claims are the claims carried by every token.
type Claims struct {
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return uint(id), nil
}

// TokenPair is what a successful login hands out.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer creates an Issuer.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// GenerateToken creates a new token of the given type for a user ID.
func (i *Issuer) GenerateToken(userID uint, typ TokenType) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrEmptySecret
	}
	ttl := i.accessTTL
	if typ == RefreshToken {
		ttl = i.refreshTTL
	}
	now := i.now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// GeneratePair creates a refresh token and a matching access token.
func (i *Issuer) GeneratePair(userID uint) (TokenPair, error) {
	refresh, err := i.GenerateToken(userID, RefreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	access, err := i.GenerateToken(userID, AccessToken)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Refresh: refresh, Access: access}, nil
}

// Parse validates signature, expiry and type and returns the claims.
func (i *Issuer) Parse(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Type != want {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (i *Issuer) Refresh(refreshToken string) (string, error) {
	claims, err := i.Parse(refreshToken, RefreshToken)
	if err != nil {
		return "", err
	}
	userID, err := claims.UserID()
	if err != nil {
		return "", err
	}
	return i.GenerateToken(userID, AccessToken)
}
