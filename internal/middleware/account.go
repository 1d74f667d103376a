package middleware

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/identity"
	"affiliatehub/internal/models"
)

type AccountResolver interface {
	Resolve(ctx context.Context, subject string) (*models.Account, error)
}

const accountErrorKey = "account_lookup_failed"

// ResolveAccount loads the caller's account once per request. Anonymous callers and
// subjects without an account continue with no account on the context.
func ResolveAccount(resolver AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		subject := identity.Subject(ctx)
		if subject == "" {
			c.Next()
			return
		}

		acc, err := resolver.Resolve(ctx, subject)
		if err != nil {
			log.Printf("[account][resolve] request=%s subject=%s: %v", RequestID(c), subject, err)
			c.Set(accountErrorKey, true)
			c.Next()
			return
		}
		if acc != nil {
			c.Request = c.Request.WithContext(identity.WithAccount(ctx, acc))
		}
		c.Next()
	}
}

// AccountLookupFailed reports whether the store failed while resolving the account,
// as opposed to the caller simply not having one.
func AccountLookupFailed(c *gin.Context) bool {
	return c.GetBool(accountErrorKey)
}
