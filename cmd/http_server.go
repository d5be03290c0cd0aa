package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/audit"
	auditpg "github.com/medikacare/terapis-management/internal/audit/postgres"
	"github.com/medikacare/terapis-management/internal/auth"
	authpg "github.com/medikacare/terapis-management/internal/auth/postgres"
	"github.com/medikacare/terapis-management/internal/evaluasi"
	evaluasipg "github.com/medikacare/terapis-management/internal/evaluasi/postgres"
	"github.com/medikacare/terapis-management/internal/requirement"
	requirementpg "github.com/medikacare/terapis-management/internal/requirement/postgres"
	"github.com/medikacare/terapis-management/internal/role"
	rolepg "github.com/medikacare/terapis-management/internal/role/postgres"
	"github.com/medikacare/terapis-management/internal/statistics"
	statisticspg "github.com/medikacare/terapis-management/internal/statistics/postgres"
	"github.com/medikacare/terapis-management/internal/terapis"
	terapispg "github.com/medikacare/terapis-management/internal/terapis/postgres"
	"github.com/medikacare/terapis-management/internal/tna"
	tnapg "github.com/medikacare/terapis-management/internal/tna/postgres"
	"github.com/medikacare/terapis-management/internal/training"
	trainingpg "github.com/medikacare/terapis-management/internal/training/postgres"
	"github.com/medikacare/terapis-management/internal/transport/rest"
	"github.com/medikacare/terapis-management/internal/user"
	userpg "github.com/medikacare/terapis-management/internal/user/postgres"
	"github.com/medikacare/terapis-management/pkg/logger"
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
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting http server", "address", addr)

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
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	lg := logger.L()

	db, err := initDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	router := chi.NewRouter()

	// Repositories.
	authRepo := authpg.NewRepository(gormDB)
	roleRepo := rolepg.NewRoleRepository(gormDB)
	userRepo := userpg.NewUserRepository(gormDB)
	auditRepo := auditpg.NewAuditRepository(gormDB)
	terapisRepo := terapispg.NewTerapisRepository(gormDB)
	requirementRepo := requirementpg.NewRequirementRepository(gormDB)
	tnaRepo := tnapg.NewTNARepository(gormDB)
	evaluasiRepo := evaluasipg.NewEvaluasiRepository(gormDB)
	trainingRepo := trainingpg.NewModuleRepository(gormDB)
	statsRepo := statisticspg.NewStatisticsRepository(gormDB)

	// Services.
	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.BCryptCost, lg)
	roleService := role.NewService(roleRepo, lg)
	userService := user.NewService(userRepo, lg)
	auditService := audit.NewService(auditRepo, lg)
	terapisService := terapis.NewService(terapisRepo, lg)
	requirementService := requirement.NewService(requirementRepo, lg)
	tnaService := tna.NewService(tnaRepo, terapisRepo, lg)
	evaluasiService := evaluasi.NewService(evaluasiRepo, terapisRepo, lg)
	trainingService := training.NewService(trainingRepo, lg)
	statsService := statistics.NewService(statsRepo, lg)

	recorder := audit.NewRecorder(auditService, lg, "/api/v1")

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		Role:        role.NewHandler(roleService),
		User:        user.NewHandler(userService),
		Terapis:     terapis.NewHandler(terapisService),
		Requirement: requirement.NewHandler(requirementService, auditService),
		TNA:         tna.NewHandler(tnaService),
		Evaluasi:    evaluasi.NewHandler(evaluasiService),
		Training:    training.NewHandler(trainingService),
		Statistics:  statistics.NewHandler(statsService),
		Audit:       audit.NewHandler(auditService),
	}

	rest.RegisterAllRoutes(router, db.DB, handlers, recorder, cfg.Server.Origins(), lg)

	return &Dependencies{
		Config: cfg,
		DB:     db,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB opens and verifies the shared connection pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pool so both share one set
// of connections. Queries held past the configured threshold are logged.
func initGorm(db *sqlx.DB, cfg internal.DatabaseConfig) (*gorm.DB, error) {
	slowLog := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold: cfg.SlowQueryThreshold,
			LogLevel:      gormlogger.Warn,
		},
	)

	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: slowLog,
	})
}
