package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnauthenticated: no identity on the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrAccountNotFound: valid identity, but no account manager record yet.
	ErrAccountNotFound = errors.New("account not found")
)

// ValidationErrors maps form field names to the first problem found for that field.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
