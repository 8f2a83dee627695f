package repositories

import "errors"

// Sentinel errors returned by repository implementations. Callers match
// them with errors.Is; GORM driver errors are translated at the repository
// boundary so nothing above it depends on gorm.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
