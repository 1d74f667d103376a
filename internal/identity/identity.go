// Package identity carries the caller's identity-provider subject and the resolved
// account through a request context.
package identity

import (
	"context"

	"affiliatehub/internal/models"
)

type ctxKey int

const (
	subjectKey ctxKey = iota
	accountKey
)

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// Subject returns the authenticated subject id, or "" for anonymous requests.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

func WithAccount(ctx context.Context, acc *models.Account) context.Context {
	return context.WithValue(ctx, accountKey, acc)
}

// Account returns the account resolved for the subject, or nil when the caller
// is anonymous or not onboarded.
func Account(ctx context.Context) *models.Account {
	acc, _ := ctx.Value(accountKey).(*models.Account)
	return acc
}
