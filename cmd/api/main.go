package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendcore-backend/internal/adapter/http"
	"lendcore-backend/internal/adapter/middleware"
	"lendcore-backend/internal/adapter/repository/mysql"
	"lendcore-backend/internal/config"
	"lendcore-backend/internal/infrastructure/cache"
	"lendcore-backend/internal/infrastructure/db"
	clientuc "lendcore-backend/internal/usecase/client"
	"lendcore-backend/internal/usecase/dashboard"
	fundinguc "lendcore-backend/internal/usecase/funding"
	"lendcore-backend/internal/usecase/lifecycle"
	loanuc "lendcore-backend/internal/usecase/loan"
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

	loanRepo := mysql.NewLoanRepository(gdb)
	clientRepo := mysql.NewClientRepository(gdb)
	fundingRepo := mysql.NewFundingRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	loans := loanuc.NewUsecase(loanRepo, clientRepo, cfg.Currency)
	clients := clientuc.NewUsecase(clientRepo)
	sources := fundinguc.NewUsecase(fundingRepo)
	transitions := lifecycle.NewUsecase(tx)
	phases := dashboard.NewUsecase(loanRepo, clientRepo)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loans)
	clientH := httpadp.NewClientHandler(clients)
	fundingH := httpadp.NewFundingHandler(sources)
	calcH := httpadp.NewCalculatorHandler(loans)
	lifeH := httpadp.NewLifecycleHandler(transitions)
	dashH := httpadp.NewDashboardHandler(phases)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// reads
	e.GET("/health", h.Health)
	e.GET("/clients", clientH.ListClients)
	e.GET("/clients/:client_id", clientH.GetClient)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/loans/:loan_id/schedule", loanH.GetLoanSchedule)
	e.GET("/phases", dashH.Phases)
	e.GET("/funding-sources", fundingH.ListSources)

	// writes
	e.POST("/clients", clientH.CreateClient)
	e.POST("/funding-sources", fundingH.CreateSource)
	e.POST("/loans", loanH.CreateLoan)
	e.POST("/calculator/schedule", calcH.Quote)
	e.POST("/loans/:loan_id/advance", lifeH.AdvanceLoan, idemp)
	e.POST("/loans/:loan_id/reject", lifeH.RejectLoan, idemp)
	e.POST("/loans/bulk/advance", lifeH.BulkAdvance, idemp)
	e.POST("/loans/bulk/reject", lifeH.BulkReject, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
