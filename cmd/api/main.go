package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weatherornot/config"
	_ "weatherornot/docs" // Swagger docs
	eventHTTP "weatherornot/internal/event/delivery/http"
	"weatherornot/internal/event/repository/sqlite"
	"weatherornot/internal/event/usecase"
	"weatherornot/internal/httpserver"
	"weatherornot/internal/watch"
	"weatherornot/pkg/edr"
	"weatherornot/pkg/gcalendar"
	"weatherornot/pkg/log"
	"weatherornot/pkg/openai"
)

// @title       WeatherOrNot API
// @description Natural-language outdoor event planning with weather suitability checks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting WeatherOrNot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	eventRepo := sqlite.New(db, logger)

	// 4. Oracle and forecast clients
	oracle, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}
	logger.Infof(ctx, "Oracle model: %s", oracle.Model())

	forecastClient := edr.NewClient(cfg.Forecast.BaseURL, cfg.Forecast.Timeout)

	// Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gc
		}
	}

	// 5. Event domain
	eventUC := usecase.New(logger, oracle, forecastClient, eventRepo, calendarClient, nil, usecase.Config{
		Timezone:   cfg.Dialogue.Timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	eventHandler := eventHTTP.New(logger, eventUC, cfg.Dialogue.Timezone)

	// 6. Weather watcher (optional)
	if cfg.Watch.Enabled {
		watcher := watch.New(logger, eventRepo, eventUC, cfg.Watch.Spec)
		if err := watcher.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start weather watcher: ", err)
			return
		}
		defer watcher.Stop()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		EventHandler:  eventHandler,
		RatePerMinute: cfg.RateLimit.PerMinute,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
