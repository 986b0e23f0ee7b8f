package pattern

import "errors"

var (
	ErrWorkPatternNotFound  = errors.New("work pattern not found")
	ErrWorkPatternsNotFound = errors.New("no work patterns found for this store")
)
