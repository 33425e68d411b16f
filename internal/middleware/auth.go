package middleware

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/config"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key holding *models.JWTClaims
const ClaimsKey = "claims"

// AuthMiddleware extracts the JWT claims of a back-office user
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "code": "unauthorized"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format", "code": "unauthorized"})
			return
		}

		// signature and expiry are verified by the gateway
		claims, err := extractClaims(parts[1])
		if err != nil {
			observability.Logger().Warn("failed to extract claims from token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "code": "unauthorized"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func extractClaims(token string) (*models.JWTClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid token format")
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	var claims models.JWTClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}

	return &claims, nil
}

// GetClaims returns the claims stored by AuthMiddleware
func GetClaims(c *gin.Context) (*models.JWTClaims, error) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, fmt.Errorf("claims not found")
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}
	return claims, nil
}

// RequireRole lets the request through when the user holds any of roles.
// Empty role names never match.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Claims not found", "code": "unauthorized"})
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		observability.Logger().Warn("access denied",
			zap.String("user", claims.PreferredUsername),
			zap.Strings("required", roles),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied", "code": "forbidden"})
	}
}

// RequireAdmin allows only the configured admin group
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(config.AppConfig.AdminGroup)
}

// RequireReportAccess allows the report group and admins
func RequireReportAccess() gin.HandlerFunc {
	return RequireRole(config.AppConfig.ReportGroup, config.AppConfig.AdminGroup)
}

// IsAdmin checks if the user has admin privileges
func IsAdmin(c *gin.Context) (bool, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return false, err
	}
	return claims.HasRole(config.AppConfig.AdminGroup), nil
}
