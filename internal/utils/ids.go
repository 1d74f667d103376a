package utils

import (
	"github.com/oklog/ulid/v2"
)

// NewID returns a lexically time-sortable identifier.
func NewID() string {
	return ulid.Make().String()
}
