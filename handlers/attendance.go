package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shouvik177/HRMS-Backend/models"
	"github.com/shouvik177/HRMS-Backend/stores"
)

type AttendanceHandler struct {
	attendance stores.AttendanceStore
	employees  stores.EmployeeStore
}

func NewAttendanceHandler(attendance stores.AttendanceStore, employees stores.EmployeeStore) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, employees: employees}
}

type attendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// attendanceRecord is the wire shape for attendance rows: the employee
// appears as its employee_id string, not a nested object.
type attendanceRecord struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func newAttendanceRecord(a *models.Attendance) attendanceRecord {
	return attendanceRecord{
		ID:         a.ID,
		EmployeeID: a.Employee.EmployeeID,
		Date:       a.Date.Format(models.DateLayout),
		Status:     a.Status,
	}
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := stores.AttendanceFilter{
		EmployeeID: strings.TrimSpace(r.URL.Query().Get("employee_id")),
	}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(models.DateLayout, dateStr)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, FieldErrors{"date": {"Date must be in YYYY-MM-DD format."}})
			return
		}
		filter.Date = &date
	}

	records, err := h.attendance.List(filter)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to load attendance.")
		return
	}

	items := make([]attendanceRecord, 0, len(records))
	for i := range records {
		items = append(items, newAttendanceRecord(&records[i]))
	}
	respondJSON(w, http.StatusOK, items)
}

// Create marks attendance, rejecting a second record for the same
// (employee, date) pair.
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	employee, date, fe := h.validate(&req)
	if len(fe) > 0 {
		respondJSON(w, http.StatusBadRequest, fe)
		return
	}

	if _, err := h.attendance.GetByEmployeeAndDate(employee.ID, date); err == nil {
		respondDetail(w, http.StatusBadRequest, "Attendance for this employee on this date already exists.")
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
		return
	}

	record := models.Attendance{EmployeeID: employee.ID, Date: date, Status: req.Status}
	if err := h.attendance.Create(&record); err != nil {
		// The composite unique index is the backstop for concurrent creates.
		if errors.Is(err, stores.ErrDuplicate) {
			respondDetail(w, http.StatusBadRequest, "Attendance for this employee on this date already exists.")
			return
		}
		respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
		return
	}

	record.Employee = *employee
	respondJSON(w, http.StatusCreated, newAttendanceRecord(&record))
}

// Upsert overwrites the status for an existing (employee, date) pair
// (200) or creates the record (201).
func (h *AttendanceHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	employee, date, fe := h.validate(&req)
	if len(fe) > 0 {
		respondJSON(w, http.StatusBadRequest, fe)
		return
	}

	existing, err := h.attendance.GetByEmployeeAndDate(employee.ID, date)
	if err == nil {
		h.overwrite(w, existing, employee, req.Status)
		return
	}
	if !errors.Is(err, stores.ErrNotFound) {
		respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
		return
	}

	record := models.Attendance{EmployeeID: employee.ID, Date: date, Status: req.Status}
	if err := h.attendance.Create(&record); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			// Lost a race with a concurrent create; update the winner's row.
			existing, err := h.attendance.GetByEmployeeAndDate(employee.ID, date)
			if err != nil {
				respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
				return
			}
			h.overwrite(w, existing, employee, req.Status)
			return
		}
		respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
		return
	}

	record.Employee = *employee
	respondJSON(w, http.StatusCreated, newAttendanceRecord(&record))
}

func (h *AttendanceHandler) overwrite(w http.ResponseWriter, existing *models.Attendance, employee *models.Employee, status string) {
	existing.Status = status
	if err := h.attendance.Save(existing); err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to save attendance.")
		return
	}
	existing.Employee = *employee
	respondJSON(w, http.StatusOK, newAttendanceRecord(existing))
}

// validate resolves and checks the shared create/upsert payload.
func (h *AttendanceHandler) validate(req *attendanceRequest) (*models.Employee, time.Time, FieldErrors) {
	fe := FieldErrors{}
	var employee *models.Employee
	var date time.Time

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		fe.Add("employee_id", "employee_id is required.")
	} else {
		var err error
		employee, err = h.employees.GetByEmployeeID(employeeID)
		if err != nil {
			employee = nil
			fe.Add("employee_id", "Employee not found.")
		}
	}

	if req.Date == "" {
		fe.Add("date", "Date is required.")
	} else {
		var err error
		date, err = time.Parse(models.DateLayout, req.Date)
		if err != nil {
			fe.Add("date", "Date must be in YYYY-MM-DD format.")
		}
	}

	if !models.ValidStatus(req.Status) {
		fe.Add("status", "Status must be 'Present' or 'Absent'.")
	}

	return employee, date, fe
}
