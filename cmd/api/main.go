package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hostelhq/hostelhq/internal/auth"
	authStore "github.com/hostelhq/hostelhq/internal/auth/store"
	"github.com/hostelhq/hostelhq/internal/config"
	"github.com/hostelhq/hostelhq/internal/dashboard"
	dashboardStore "github.com/hostelhq/hostelhq/internal/dashboard/store"
	"github.com/hostelhq/hostelhq/internal/database"
	hostelHttp "github.com/hostelhq/hostelhq/internal/http"
	authHandler "github.com/hostelhq/hostelhq/internal/http/auth"
	dashboardHandler "github.com/hostelhq/hostelhq/internal/http/dashboard"
	residentHandler "github.com/hostelhq/hostelhq/internal/http/resident"
	roomHandler "github.com/hostelhq/hostelhq/internal/http/room"
	uploadHandler "github.com/hostelhq/hostelhq/internal/http/upload"
	"github.com/hostelhq/hostelhq/internal/receipt"
	"github.com/hostelhq/hostelhq/internal/resident"
	residentStore "github.com/hostelhq/hostelhq/internal/resident/store"
	"github.com/hostelhq/hostelhq/internal/room"
	roomStore "github.com/hostelhq/hostelhq/internal/room/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		authService      = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		residentService  = resident.NewService(residentStore.New(db))
		roomService      = room.NewService(roomStore.New(db))
		dashboardService = dashboard.NewService(dashboardStore.New(db))
		uploader         = receipt.NewUploader(cfg.Storage.Endpoint, cfg.Storage.APIKey, cfg.Storage.Bucket)
	)

	var (
		authH      = authHandler.NewHandler(authService)
		residentH  = residentHandler.NewHandler(residentService)
		roomH      = roomHandler.NewHandler(roomService)
		dashboardH = dashboardHandler.NewHandler(dashboardService, residentService)
		uploadH    = uploadHandler.NewHandler(uploader)
	)

	router := hostelHttp.New(authService, authH, residentH, roomH, dashboardH, uploadH, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
