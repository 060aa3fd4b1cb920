package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Token is an opaque bearer credential. Each user holds at most one
// active token; deleting it revokes every session at once.
type Token struct {
	Key       string `gorm:"primaryKey;size:40"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	User      User   `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

// GenerateTokenKey returns a new random 40-character hex token key.
func GenerateTokenKey() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
