package main

import (
	"fmt"
	"os"

	"github.com/Jonathan-Rajaratnam/project-management/internal/auth"
	"github.com/Jonathan-Rajaratnam/project-management/internal/config"
	"github.com/Jonathan-Rajaratnam/project-management/internal/db"
	"github.com/Jonathan-Rajaratnam/project-management/internal/excel"
	httphandler "github.com/Jonathan-Rajaratnam/project-management/internal/http"
	"github.com/Jonathan-Rajaratnam/project-management/internal/http/middleware"
	"github.com/Jonathan-Rajaratnam/project-management/internal/logger"
	"github.com/Jonathan-Rajaratnam/project-management/internal/pdf"
	"github.com/Jonathan-Rajaratnam/project-management/internal/repository"
	"github.com/Jonathan-Rajaratnam/project-management/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	catalogRepo := repository.NewCatalogRepository(database)
	quoteRepo := repository.NewQuoteRepository(database)
	financeRepo := repository.NewFinanceRepository(database)
	teamRepo := repository.NewTeamRepository(database)

	quoteService := service.NewQuoteService(catalogRepo, financeRepo, teamRepo, quoteRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	financeService := service.NewFinanceService(financeRepo, financeRepo, log)
	forecastService := service.NewForecastService(financeRepo, quoteRepo, log)
	teamService := service.NewTeamService(teamRepo, log)
	exportService := service.NewExportService(quoteRepo, financeRepo, pdf.NewGenerator(), excel.NewGenerator(), log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(quoteService, catalogService, financeService, forecastService, teamService, exportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting quote service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
