package stores

import (
	"github.com/shouvik177/HRMS-Backend/models"

	"gorm.io/gorm"
)

// EmployeeStore abstracts employee persistence.
type EmployeeStore interface {
	// List returns all employees ordered by employee_id ascending.
	List() ([]models.Employee, error)
	GetByID(id uint) (*models.Employee, error)
	GetByEmployeeID(employeeID string) (*models.Employee, error)
	// EmployeeIDTaken reports whether employeeID belongs to an employee
	// other than excludeID (0 excludes nobody).
	EmployeeIDTaken(employeeID string, excludeID uint) (bool, error)
	Create(e *models.Employee) error
	Save(e *models.Employee) error
	// Delete removes the employee and every attendance record it owns.
	Delete(id uint) error
}

// GormEmployeeStore implements EmployeeStore using GORM.
type GormEmployeeStore struct{ DB *gorm.DB }

func (s *GormEmployeeStore) List() ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	if err := s.DB.Order("employee_id asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *GormEmployeeStore) GetByID(id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormEmployeeStore) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	var e models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormEmployeeStore) EmployeeIDTaken(employeeID string, excludeID uint) (bool, error) {
	var count int64
	query := s.DB.Model(&models.Employee{}).Where("employee_id = ?", employeeID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormEmployeeStore) Create(e *models.Employee) error {
	return s.DB.Create(e).Error
}

func (s *GormEmployeeStore) Save(e *models.Employee) error {
	return s.DB.Save(e).Error
}

func (s *GormEmployeeStore) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
}
