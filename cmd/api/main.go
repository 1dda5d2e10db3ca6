package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "internship-management-backend/internal/adapter/http"
	"internship-management-backend/internal/adapter/middleware"
	"internship-management-backend/internal/adapter/repository/mysql"
	"internship-management-backend/internal/config"
	"internship-management-backend/internal/domain/account"
	"internship-management-backend/internal/infrastructure/cache"
	"internship-management-backend/internal/infrastructure/db"
	adminUC "internship-management-backend/internal/usecase/admin"
	applicationUC "internship-management-backend/internal/usecase/application"
	authUC "internship-management-backend/internal/usecase/auth"
	companyUC "internship-management-backend/internal/usecase/company"
	positionUC "internship-management-backend/internal/usecase/position"
	studentUC "internship-management-backend/internal/usecase/student"
	"internship-management-backend/pkg/token"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	accounts := mysql.NewAccountRepository(gdb)
	students := mysql.NewStudentRepository(gdb)
	companies := mysql.NewCompanyRepository(gdb)
	positions := mysql.NewPositionRepository(gdb)
	applications := mysql.NewApplicationRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	// usecases
	auth := authUC.NewUsecase(accounts, tokens)
	studentProfiles := studentUC.NewUsecase(students)
	companyProfiles := companyUC.NewUsecase(companies)
	positionCatalog := positionUC.NewUsecase(positions, companies)
	workflow := applicationUC.NewUsecase(applications, positions, companies, students, uow)
	admin := adminUC.NewUsecase(accounts, companies, students)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth)
	studentH := httpadp.NewStudentHandler(studentProfiles)
	companyH := httpadp.NewCompanyHandler(companyProfiles)
	positionH := httpadp.NewPositionHandler(positionCatalog)
	applicationH := httpadp.NewApplicationHandler(workflow)
	adminH := httpadp.NewAdminHandler(admin, workflow)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// public routes
	e.GET("/health", h.Health)
	api := e.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.GET("/positions", positionH.List)
	api.GET("/positions/:id", positionH.Get)

	// authenticated routes; mutations go through the idempotency layer
	authed := api.Group("",
		middleware.JWTAuth(tokens),
		middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	authed.GET("/students/profile", studentH.GetProfile, middleware.RoleAuth(account.RoleStudent))
	authed.PUT("/students/profile", studentH.UpdateProfile, middleware.RoleAuth(account.RoleStudent))

	authed.GET("/companies/profile", companyH.GetProfile, middleware.RoleAuth(account.RoleCompany))
	authed.PUT("/companies/profile", companyH.UpdateProfile, middleware.RoleAuth(account.RoleCompany))

	authed.POST("/positions", positionH.Create, middleware.RoleAuth(account.RoleAdmin))
	authed.PUT("/positions/:id", positionH.Update, middleware.RoleAuth(account.RoleAdmin))
	authed.DELETE("/positions/:id", positionH.Delete, middleware.RoleAuth(account.RoleAdmin))

	authed.GET("/applications", applicationH.List, middleware.RoleAuth(account.RoleStudent, account.RoleCompany))
	authed.POST("/applications", applicationH.Create, middleware.RoleAuth(account.RoleStudent))
	authed.DELETE("/applications/:id", applicationH.Withdraw, middleware.RoleAuth(account.RoleStudent))
	authed.PUT("/applications/:id/status", applicationH.UpdateStatus, middleware.RoleAuth(account.RoleCompany))
	authed.GET("/applications/interviews", applicationH.ListInterviews, middleware.RoleAuth(account.RoleCompany))

	adminGroup := authed.Group("/admin", middleware.RoleAuth(account.RoleAdmin))
	adminGroup.GET("/accounts", adminH.ListAccounts)
	adminGroup.PUT("/accounts/:id", adminH.UpdateAccount)
	adminGroup.DELETE("/accounts/:id", adminH.DeleteAccount)
	adminGroup.GET("/companies", adminH.ListCompanies)
	adminGroup.DELETE("/companies/:id", adminH.DeleteCompany)
	adminGroup.GET("/students", adminH.ListStudents)
	adminGroup.DELETE("/students/:id", adminH.DeleteStudent)
	adminGroup.GET("/internship-report", adminH.InternshipReport)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
