package main

import (
	"fmt"
	"net/http"

	"github.com/obracontrol/asistencia-backend-go/internal/config"
	appHTTP "github.com/obracontrol/asistencia-backend-go/internal/handler/http"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/database"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/jwt"
	"github.com/obracontrol/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/obracontrol/asistencia-backend-go/internal/service/attendance"
	serviceAuth "github.com/obracontrol/asistencia-backend-go/internal/service/auth"
	employeeService "github.com/obracontrol/asistencia-backend-go/internal/service/employee"
	siteService "github.com/obracontrol/asistencia-backend-go/internal/service/site"
	statsService "github.com/obracontrol/asistencia-backend-go/internal/service/stats"
	userService "github.com/obracontrol/asistencia-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, siteRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, siteRepo)
	statsSvc := statsService.NewStatsService(attendanceRepo, employeeRepo, siteRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Site:       appHTTP.NewSiteHandler(siteSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Stats:      appHTTP.NewStatsHandler(statsSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
