package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shouvik177/HRMS-Backend/models"
	"github.com/shouvik177/HRMS-Backend/stores"

	"github.com/go-chi/chi/v5"
)

type EmployeeHandler struct {
	employees stores.EmployeeStore
}

func NewEmployeeHandler(employees stores.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// employeeRequest uses pointers so partial updates can tell an absent
// field from an empty one.
type employeeRequest struct {
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List()
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to load employees.")
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	var employee models.Employee
	if fe := h.applyFields(&employee, &req, false); len(fe) > 0 {
		respondJSON(w, http.StatusBadRequest, fe)
		return
	}

	if err := h.employees.Create(&employee); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			respondJSON(w, http.StatusBadRequest, FieldErrors{"employee_id": {"Employee ID already exists."}})
			return
		}
		respondDetail(w, http.StatusInternalServerError, "Failed to save employee.")
		return
	}

	respondJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.load(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *EmployeeHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *EmployeeHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	employee, ok := h.load(w, r)
	if !ok {
		return
	}

	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	if fe := h.applyFields(employee, &req, partial); len(fe) > 0 {
		respondJSON(w, http.StatusBadRequest, fe)
		return
	}

	if err := h.employees.Save(employee); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			respondJSON(w, http.StatusBadRequest, FieldErrors{"employee_id": {"Employee ID already exists."}})
			return
		}
		respondDetail(w, http.StatusInternalServerError, "Failed to save employee.")
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := h.employees.Delete(employee.ID); err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to delete employee.")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// load resolves the {id} route param, writing a 404 on failure.
func (h *EmployeeHandler) load(w http.ResponseWriter, r *http.Request) (*models.Employee, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		respondDetail(w, http.StatusNotFound, "Not found.")
		return nil, false
	}

	employee, err := h.employees.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			respondDetail(w, http.StatusNotFound, "Not found.")
		} else {
			respondDetail(w, http.StatusInternalServerError, "Failed to load employee.")
		}
		return nil, false
	}
	return employee, true
}

// applyFields validates req and copies accepted values onto e. With
// partial set, absent fields keep their current values. All string
// fields are trimmed before storage.
func (h *EmployeeHandler) applyFields(e *models.Employee, req *employeeRequest, partial bool) FieldErrors {
	fe := FieldErrors{}

	if req.EmployeeID != nil || !partial {
		value := ""
		if req.EmployeeID != nil {
			value = strings.TrimSpace(*req.EmployeeID)
		}
		if value == "" {
			fe.Add("employee_id", "Employee ID is required.")
		} else {
			taken, err := h.employees.EmployeeIDTaken(value, e.ID)
			switch {
			case err != nil:
				fe.Add("employee_id", "Failed to check Employee ID.")
			case taken:
				fe.Add("employee_id", "Employee ID already exists.")
			default:
				e.EmployeeID = value
			}
		}
	}

	setTrimmed := func(field string, value *string, message string, dst *string) {
		if value == nil && partial {
			return
		}
		trimmed := ""
		if value != nil {
			trimmed = strings.TrimSpace(*value)
		}
		if trimmed == "" {
			fe.Add(field, message)
			return
		}
		*dst = trimmed
	}

	setTrimmed("full_name", req.FullName, "Full name is required.", &e.FullName)
	setTrimmed("email", req.Email, "Email is required.", &e.Email)
	setTrimmed("department", req.Department, "Department is required.", &e.Department)

	return fe
}
