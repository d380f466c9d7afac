package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/appointment"
	appointmentPostgres "github.com/IgorMello0/auraia-hub/internal/appointment/postgres"
	"github.com/IgorMello0/auraia-hub/internal/auth"
	authPostgres "github.com/IgorMello0/auraia-hub/internal/auth/postgres"
	"github.com/IgorMello0/auraia-hub/internal/authz"
	authzPostgres "github.com/IgorMello0/auraia-hub/internal/authz/postgres"
	"github.com/IgorMello0/auraia-hub/internal/catalog"
	catalogPostgres "github.com/IgorMello0/auraia-hub/internal/catalog/postgres"
	"github.com/IgorMello0/auraia-hub/internal/client"
	clientPostgres "github.com/IgorMello0/auraia-hub/internal/client/postgres"
	"github.com/IgorMello0/auraia-hub/internal/conversation"
	conversationPostgres "github.com/IgorMello0/auraia-hub/internal/conversation/postgres"
	"github.com/IgorMello0/auraia-hub/internal/core/events"
	"github.com/IgorMello0/auraia-hub/internal/employee"
	employeePostgres "github.com/IgorMello0/auraia-hub/internal/employee/postgres"
	"github.com/IgorMello0/auraia-hub/internal/formtemplate"
	formtemplatePostgres "github.com/IgorMello0/auraia-hub/internal/formtemplate/postgres"
	"github.com/IgorMello0/auraia-hub/internal/module"
	modulePostgres "github.com/IgorMello0/auraia-hub/internal/module/postgres"
	"github.com/IgorMello0/auraia-hub/internal/payment"
	paymentPostgres "github.com/IgorMello0/auraia-hub/internal/payment/postgres"
	"github.com/IgorMello0/auraia-hub/internal/professional"
	professionalPostgres "github.com/IgorMello0/auraia-hub/internal/professional/postgres"
	"github.com/IgorMello0/auraia-hub/internal/transport/rest"
	"github.com/IgorMello0/auraia-hub/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	gdb := deps.GormDB

	// Authentication
	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.AccessTokenSecret,
		deps.Config.Security.RefreshTokenSecret,
		deps.Config.Security.AccessTokenDuration,
		deps.Config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(gdb), tokenGen, deps.Config.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	// Authorization core
	moduleRepo := modulePostgres.NewRepository(gdb)
	grantRepo := authzPostgres.NewGrantRepository(gdb)
	directory := authzPostgres.NewEmployeeDirectory(gdb)
	engine := authz.NewEngine(moduleRepo, grantRepo, lg)
	authorization := authz.NewAuthorization(engine, lg)
	authzService := authz.NewService(moduleRepo, grantRepo, directory, lg)
	authzHandler := authz.NewHandler(authzService)

	moduleService := module.NewService(moduleRepo, lg)
	moduleHandler := module.NewHandler(moduleService)

	// Event bus and feature services
	bus := events.NewEventBus(lg)

	clientService := client.NewService(clientPostgres.NewRepository(gdb), lg)
	appointmentService := appointment.NewService(appointmentPostgres.NewRepository(gdb), clientService, bus, lg)
	paymentService := payment.NewService(paymentPostgres.NewRepository(gdb), appointmentService, bus, lg)
	catalogService := catalog.NewService(catalogPostgres.NewRepository(gdb), lg)
	conversationService := conversation.NewService(conversationPostgres.NewRepository(gdb), lg)
	formtemplateService := formtemplate.NewService(formtemplatePostgres.NewRepository(gdb), lg)
	employeeService := employee.NewService(employeePostgres.NewRepository(gdb), deps.Config.Security.BCryptCost, lg)
	professionalService := professional.NewService(professionalPostgres.NewRepository(gdb), lg)

	// Lifecycle events become system messages in the client's chat thread.
	conversation.NewSubscriber(conversationService, appointmentService, lg).Register(bus)

	handlers := rest.Handlers{
		Auth:         authHandler,
		Authz:        authzHandler,
		Module:       moduleHandler,
		Professional: professional.NewHandler(professionalService),
		Employee:     employee.NewHandler(employeeService),
		Client:       client.NewHandler(clientService),
		Catalog:      catalog.NewHandler(catalogService),
		Appointment:  appointment.NewHandler(appointmentService),
		Payment:      payment.NewHandler(paymentService),
		Conversation: conversation.NewHandler(conversationService),
		FormTemplate: formtemplate.NewHandler(formtemplateService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, authorization, deps.Config.Server.AllowedOrigins, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gdb,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
