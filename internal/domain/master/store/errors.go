package store

import "errors"

var (
	ErrStoreLocationNotFound = errors.New("store location not found")
)
