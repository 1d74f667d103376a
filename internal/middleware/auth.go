package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"affiliatehub/internal/identity"
)

// TokenLeeway is the clock skew tolerated on exp/nbf/iat.
const TokenLeeway = 2 * time.Minute

const SubjectKey = "subject"

// AuthMiddleware verifies the identity provider's HS256 bearer token and puts its
// subject on the request context. With an empty secret every request passes
// through anonymously.
func AuthMiddleware(secret string) gin.HandlerFunc {
	if secret == "" {
		log.Printf("[auth] warning: no JWT secret configured, requests are served without identity")
		return func(c *gin.Context) { c.Next() }
	}

	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(TokenLeeway),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := parser.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Request = c.Request.WithContext(identity.WithSubject(c.Request.Context(), claims.Subject))
		c.Next()
	}
}
