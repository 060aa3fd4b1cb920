package stores

import (
	"time"

	"github.com/shouvik177/HRMS-Backend/models"

	"gorm.io/gorm"
)

// AttendanceFilter narrows List results. Zero values match everything;
// filters compose with AND.
type AttendanceFilter struct {
	Date       *time.Time
	EmployeeID string
}

// AttendanceStore abstracts attendance persistence.
type AttendanceStore interface {
	// List returns records ordered by date descending, then employee
	// ascending, with the owning Employee loaded.
	List(filter AttendanceFilter) ([]models.Attendance, error)
	GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.Attendance, error)
	Create(a *models.Attendance) error
	Save(a *models.Attendance) error
}

// GormAttendanceStore implements AttendanceStore using GORM.
type GormAttendanceStore struct{ DB *gorm.DB }

func (s *GormAttendanceStore) List(filter AttendanceFilter) ([]models.Attendance, error) {
	query := s.DB.Preload("Employee")
	if filter.Date != nil {
		query = query.Where("attendances.date = ?", *filter.Date)
	}
	if filter.EmployeeID != "" {
		query = query.Joins("JOIN employees ON employees.id = attendances.employee_id").
			Where("employees.employee_id = ?", filter.EmployeeID)
	}

	records := make([]models.Attendance, 0)
	err := query.Order("attendances.date desc, attendances.employee_id asc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormAttendanceStore) GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.Attendance, error) {
	var a models.Attendance
	if err := s.DB.Where("employee_id = ? AND date = ?", employeeID, date).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormAttendanceStore) Create(a *models.Attendance) error {
	return s.DB.Omit("Employee").Create(a).Error
}

func (s *GormAttendanceStore) Save(a *models.Attendance) error {
	return s.DB.Omit("Employee").Save(a).Error
}
