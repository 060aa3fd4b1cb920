// Package stores holds the persistence interfaces handlers depend on,
// plus their GORM implementations.
package stores

import (
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate is returned when a write loses to a uniqueness
// constraint. Requires TranslateError on the gorm config.
var ErrDuplicate = gorm.ErrDuplicatedKey
