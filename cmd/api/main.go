package main

import (
	"fmt"
	"net/http"

	"github.com/staffsync/attendance-backend-go/internal/config"
	appHTTP "github.com/staffsync/attendance-backend-go/internal/handler/http"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
	"github.com/staffsync/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffsync/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffsync/attendance-backend-go/internal/service/attendance"
	geofenceService "github.com/staffsync/attendance-backend-go/internal/service/geofence"
	wfhService "github.com/staffsync/attendance-backend-go/internal/service/wfh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	wfhRepo := postgresql.NewWFHRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	wfhSvc := wfhService.NewWFHService(wfhRepo, employeeRepo)
	geofenceSvc := geofenceService.NewGeofenceService(companyRepo)

	geofenceHandler := appHTTP.NewGeofenceHandler(geofenceSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	wfhHandler := appHTTP.NewWFHHandler(wfhSvc)

	router := appHTTP.NewRouter(
		JWTService,
		geofenceHandler,
		attendanceHandler,
		wfhHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
