package models

import (
	"time"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// ValidStatus reports whether s is an allowed attendance status.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance records one employee's status for one calendar day. The
// composite unique index guarantees at most one row per (employee, date).
type Attendance struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Employee   Employee  `gorm:"belongsTo;foreignKey:EmployeeID;references:ID"`
	Date       time.Time `gorm:"not null;type:date;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `gorm:"not null;size:10"`
}
