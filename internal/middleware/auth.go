package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/mostafaAnwar9/EmotionDetection/internal/models"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/jwt"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/response"
)

const (
	// ContextKeyUser holds the authenticated *models.User.
	ContextKeyUser = "current_user"

	bearerPrefix = "bearer "
)

// Token validation failure kinds. All map to HTTP 401; the message text is
// part of the observable API surface.
var (
	ErrMissingToken    = errors.New("token is missing")
	ErrMalformedToken  = errors.New("token is malformed")
	ErrExpiredToken    = errors.New("token is expired")
	ErrUnknownIdentity = errors.New("token identity has no account")
)

// UserFinder resolves a token's embedded identity to an account record.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Auth returns a middleware enforcing bearer-token authentication. The
// Authorization header must use exactly the Bearer scheme; any other scheme
// is rejected the same as a missing token's malformed sibling.
func Auth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ValidateRequest(c, users)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingToken):
				response.Unauthorized(c, "Token is missing")
			case errors.Is(err, ErrUnknownIdentity):
				response.Unauthorized(c, "User not found")
			default:
				response.Unauthorized(c, "Invalid token")
			}
			return
		}
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// ValidateRequest checks the request's Authorization header and returns the
// account it authenticates.
func ValidateRequest(c *gin.Context, users UserFinder) (*models.User, error) {
	raw, err := extractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}

	claims, err := jwt.Parse(raw)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	user, err := users.FindByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownIdentity
	}
	return user, nil
}

// CurrentUser extracts the authenticated account from context.
func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get(ContextKeyUser)
	u, _ := v.(*models.User)
	return u
}

func extractBearerToken(header string) (string, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return "", ErrMissingToken
	}
	if len(trimmed) < len(bearerPrefix) || !strings.EqualFold(trimmed[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMalformedToken
	}
	token := strings.TrimSpace(trimmed[len(bearerPrefix):])
	if token == "" {
		return "", ErrMalformedToken
	}
	return token, nil
}
