package repositories

import "errors"

// ErrAccountMissing is returned when a write references an account that does not exist.
var ErrAccountMissing = errors.New("account does not exist")
