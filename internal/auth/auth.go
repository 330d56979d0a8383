package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"insights-server/internal/observability"
)

var (
	ErrParseJWTToken       = errors.New("failed to parse JWT token")
	ErrInvalidJWTToken     = errors.New("invalid JWT token")
	ErrExpiredToken        = errors.New("token expired")
	ErrMissingOrganization = errors.New("token carries no organization")
)

// Claims are the JWT claims issued by the identity service. Every token is
// bound to exactly one organization; all metrics routes scope to it.
type Claims struct {
	OrganizationID string `json:"org_id"`
	jwt.RegisteredClaims
}

// Authenticator validates bearer tokens and enforces organization scoping.
type Authenticator struct {
	jwtSecret string
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) Authenticator {
	return Authenticator{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// ValidateToken parses and verifies a signed token and returns its claims.
func (a *Authenticator) ValidateToken(ctx context.Context, token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.logger.Error(ctx, "token expired", err)
			return Claims{}, ErrExpiredToken
		}
		a.logger.Error(ctx, "failed to parse token", err)
		return Claims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return Claims{}, ErrInvalidJWTToken
	}
	if claims.OrganizationID == "" {
		return Claims{}, ErrMissingOrganization
	}
	if _, err := uuid.Parse(claims.OrganizationID); err != nil {
		return Claims{}, ErrMissingOrganization
	}
	return claims, nil
}

// HandleJWTMiddleware authenticates the request and stores the token's
// organization ID in the gin context for the handlers downstream.
func (a *Authenticator) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
	claims, err := a.ValidateToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set("Organization-ID", claims.OrganizationID)
	c.Next()
}
