package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog/v3"
	"github.com/peoplehr/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplehr/hrms-backend-go/internal/handler/http"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/sse"
	"github.com/peoplehr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehr/hrms-backend-go/internal/service/attendance"
	leaveService "github.com/peoplehr/hrms-backend-go/internal/service/leave"
	notificationService "github.com/peoplehr/hrms-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	policyRepo := postgresql.NewLeavePolicyRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	requestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.System{}
	hub := sse.NewHub()

	notifService := notificationService.NewService(notificationRepo, hub, systemClock, logger, notificationService.Config{})
	defer notifService.Stop()

	leaveSvc := leaveService.NewService(
		txManager,
		policyRepo,
		balanceRepo,
		requestRepo,
		attendanceRepo,
		userRepo,
		notifService,
		systemClock,
		logger,
	)

	attendanceSvc := attendanceService.NewService(attendanceRepo, systemClock)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	notifHandler := appHTTP.NewNotificationHandler(notifService)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Logger:         logger,
	}, jwtService, leaveHandler, attendanceHandler, notifHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		_ = server.Close()
	}()

	logger.Info("server listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
