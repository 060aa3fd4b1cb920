package main

import (
	"log"
	"net/http"

	"github.com/shouvik177/HRMS-Backend/config"
	"github.com/shouvik177/HRMS-Backend/database"
	"github.com/shouvik177/HRMS-Backend/handlers"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router := handlers.NewRouter(db)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
