package models

import (
	"time"
)

// Employee is an HR record keyed by a user-supplied employee ID
// (e.g. EMP001) in addition to the database primary key.
type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	EmployeeID string    `gorm:"uniqueIndex;not null;size:50" json:"employee_id"`
	FullName   string    `gorm:"not null;size:255" json:"full_name"`
	Email      string    `gorm:"not null;size:254" json:"email"`
	Department string    `gorm:"not null;size:100" json:"department"`
}
