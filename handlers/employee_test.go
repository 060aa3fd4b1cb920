package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreateAndRetrieve(t *testing.T) {
	router := newTestRouter(t)

	// Whitespace is trimmed before storage.
	body := employeeBody("  EMP001  ", " John Doe ", " john@example.com ", " Engineering ")
	w := doRequest(t, router, http.MethodPost, "/employees/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeObject(t, w)
	assert.Equal(t, "EMP001", created["employee_id"])
	assert.Equal(t, "John Doe", created["full_name"])
	assert.Equal(t, "john@example.com", created["email"])
	assert.Equal(t, "Engineering", created["department"])

	id := uint(created["id"].(float64))
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/employees/%d/", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeObject(t, w))
}

func TestEmployeeCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/employees/", `{"employee_id":"  ","full_name":"","email":" ","department":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeObject(t, w)
	assert.Contains(t, errs, "employee_id")
	assert.Contains(t, errs, "full_name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "department")

	// Absent fields fail the same way on create.
	w = doRequest(t, router, http.MethodPost, "/employees/", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decodeObject(t, w), 4)
}

func TestEmployeeDuplicateID(t *testing.T) {
	router := newTestRouter(t)
	createEmployee(t, router, "EMP001")

	w := doRequest(t, router, http.MethodPost, "/employees/", employeeBody("EMP001", "Jane Doe", "jane@example.com", "Sales"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeObject(t, w)
	assert.Equal(t, []interface{}{"Employee ID already exists."}, errs["employee_id"])
}

func TestEmployeeList(t *testing.T) {
	router := newTestRouter(t)
	createEmployee(t, router, "EMP002")
	createEmployee(t, router, "EMP001")

	w := doRequest(t, router, http.MethodGet, "/employees/", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "EMP001", list[0]["employee_id"])
	assert.Equal(t, "EMP002", list[1]["employee_id"])
}

func TestEmployeeListEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/employees/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestEmployeeFullUpdate(t *testing.T) {
	router := newTestRouter(t)
	id := createEmployee(t, router, "EMP001")

	body := employeeBody("EMP010", "Jane Doe", "jane@example.com", "Sales")
	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/employees/%d/", id), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeObject(t, w)
	assert.Equal(t, "EMP010", updated["employee_id"])
	assert.Equal(t, "Sales", updated["department"])

	// Full update requires every field.
	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/employees/%d/", id), `{"full_name":"Only Name"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeObject(t, w)
	assert.Contains(t, errs, "employee_id")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "department")
}

func TestEmployeePartialUpdate(t *testing.T) {
	router := newTestRouter(t)
	id := createEmployee(t, router, "EMP001")

	w := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/employees/%d/", id), `{"department":" Marketing "}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeObject(t, w)
	assert.Equal(t, "Marketing", updated["department"])
	assert.Equal(t, "EMP001", updated["employee_id"])
	assert.Equal(t, "John Doe", updated["full_name"])
}

func TestEmployeeUpdateUniquenessExcludesSelf(t *testing.T) {
	router := newTestRouter(t)
	id := createEmployee(t, router, "EMP001")
	createEmployee(t, router, "EMP002")

	// Re-submitting its own employee_id is fine.
	w := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/employees/%d/", id), `{"employee_id":"EMP001"}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Taking another employee's id is not.
	w = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/employees/%d/", id), `{"employee_id":"EMP002"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeObject(t, w)
	assert.Equal(t, []interface{}{"Employee ID already exists."}, errs["employee_id"])
}

func TestEmployeeNotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/employees/999/", "/employees/abc/"} {
		w := doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w := doRequest(t, router, http.MethodDelete, "/employees/999/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeDeleteCascades(t *testing.T) {
	router := newTestRouter(t)
	id := createEmployee(t, router, "EMP001")

	for _, date := range []string{"2025-02-18", "2025-02-19"} {
		body := fmt.Sprintf(`{"employee_id":"EMP001","date":%q,"status":"Present"}`, date)
		w := doRequest(t, router, http.MethodPost, "/attendance/", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/employees/%d/", id), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/attendance/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestEmployeeMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/employees/", `{"employee_id": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown fields are rejected, not silently dropped.
	w = doRequest(t, router, http.MethodPost, "/employees/", `{"employee_id":"EMP001","full_name":"A","email":"a@x.com","department":"Eng","salary":100}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
