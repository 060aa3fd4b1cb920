package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shouvik177/HRMS-Backend/database"
	"github.com/shouvik177/HRMS-Backend/handlers"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return handlers.NewRouter(db)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doAuthed(t, router, method, path, body, "")
}

func doAuthed(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRawAuth sends a request with the Authorization header set verbatim.
func doRawAuth(t *testing.T, router http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authHeader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func employeeBody(employeeID, fullName, email, department string) string {
	return fmt.Sprintf(`{"employee_id":%q,"full_name":%q,"email":%q,"department":%q}`,
		employeeID, fullName, email, department)
}

// createEmployee posts a valid employee and returns its database id.
func createEmployee(t *testing.T, router http.Handler, employeeID string) uint {
	t.Helper()

	body := employeeBody(employeeID, "John Doe", "john@example.com", "Engineering")
	w := doRequest(t, router, http.MethodPost, "/employees/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeObject(t, w)
	return uint(created["id"].(float64))
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":"Admin","email":%q,"password":%q}`, email, password)
	w := doRequest(t, router, http.MethodPost, "/auth/register/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeObject(t, w)
	return resp["token"].(string)
}
