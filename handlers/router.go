package handlers

import (
	"github.com/shouvik177/HRMS-Backend/middleware"
	"github.com/shouvik177/HRMS-Backend/stores"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// NewRouter wires stores, handlers, and routes. Paths keep their
// trailing slash; clients depend on the exact shape.
func NewRouter(db *gorm.DB) chi.Router {
	employeeStore := &stores.GormEmployeeStore{DB: db}
	attendanceStore := &stores.GormAttendanceStore{DB: db}
	userStore := &stores.GormUserStore{DB: db}
	tokenStore := &stores.GormTokenStore{DB: db}

	authHandler := NewAuthHandler(userStore, tokenStore)
	employeeHandler := NewEmployeeHandler(employeeStore)
	attendanceHandler := NewAttendanceHandler(attendanceStore, employeeStore)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Post("/auth/register/", authHandler.Register)
	router.Post("/auth/login/", authHandler.Login)
	router.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(tokenStore))
		r.Post("/auth/logout/", authHandler.Logout)
	})

	router.Get("/employees/", employeeHandler.List)
	router.Post("/employees/", employeeHandler.Create)
	router.Get("/employees/{id}/", employeeHandler.Retrieve)
	router.Put("/employees/{id}/", employeeHandler.Update)
	router.Patch("/employees/{id}/", employeeHandler.PartialUpdate)
	router.Delete("/employees/{id}/", employeeHandler.Delete)

	router.Get("/attendance/", attendanceHandler.List)
	router.Post("/attendance/", attendanceHandler.Create)
	router.Put("/attendance/", attendanceHandler.Upsert)

	return router
}
