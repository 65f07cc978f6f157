package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taskify/core/internal/adapters/repository"
	"github.com/taskify/core/internal/application/services"
	"github.com/taskify/core/internal/infrastructure/cache"
	"github.com/taskify/core/internal/infrastructure/config"
	"github.com/taskify/core/internal/infrastructure/database"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/infrastructure/server"
	"github.com/taskify/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Taskify API server",
		Long:  "Start the REST and GraphQL API with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations (up, down, version)",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Run up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			steps, _ := cmd.Flags().GetInt("steps")
			runMigration("up", steps)
		},
	}
	upCmd.Flags().Int("steps", 0, "Number of migrations to apply (0 applies all)")

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Run down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			steps, _ := cmd.Flags().GetInt("steps")
			runMigration("down", steps)
		},
	}
	downCmd.Flags().Int("steps", 0, "Number of migrations to roll back (0 rolls back all)")

	migrateCmd.AddCommand(upCmd, downCmd, &cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			if email == "" || password == "" {
				log.Fatal("Email and password are required")
			}

			createUser(email, password, name)
		},
	}

	createUserCmd.Flags().String("email", "", "User email (required)")
	createUserCmd.Flags().String("password", "", "User password (required)")
	createUserCmd.Flags().String("name", "", "Display name")

	userCmd.AddCommand(createUserCmd)
	return userCmd
}

func mustLoad() (*config.Config, *logger.Logger) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func runServer() {
	cfg, appLogger := mustLoad()
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		appLogger.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.New(cfg.Redis)
		if err != nil {
			appLogger.Warnw("Redis unavailable, user cache disabled", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	srv, err := server.New(cfg, db, redisClient, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Infow("Starting Taskify API server",
		"address", address,
		"environment", cfg.App.Environment,
		"google_login", cfg.Google.Enabled(),
		"redis", redisClient != nil,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		appLogger.Fatalw("Server failed", "error", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("Graceful shutdown failed", "error", err)
	}
}

func openMigrator() (*database.DB, *database.Migrator) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrator, err := db.NewMigrator()
	if err != nil {
		db.Close()
		log.Fatalf("Failed to prepare migrations: %v", err)
	}
	return db, migrator
}

func runMigration(direction string, steps int) {
	db, migrator := openMigrator()
	defer db.Close()

	var (
		changed bool
		err     error
	)
	switch {
	case direction == "up" && steps > 0:
		changed, err = migrator.Steps(steps)
	case direction == "up":
		changed, err = migrator.Up()
	case steps > 0:
		changed, err = migrator.Steps(-steps)
	default:
		changed, err = migrator.Down()
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if !changed {
		fmt.Println("No migrations to run")
		return
	}
	fmt.Printf("Migration %s completed successfully\n", direction)
}

func showMigrationVersion() {
	db, migrator := openMigrator()
	defer db.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func createUser(email, password, name string) {
	cfg, appLogger := mustLoad()
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	authService := services.NewAuthService(
		repository.NewUserRepository(db.DB),
		repository.NoopCache{},
		server.AuthConfig(cfg),
		appLogger,
	)

	req := ports.SignupRequest{Email: email, Password: password}
	if name != "" {
		req.Name = &name
	}

	result, err := authService.Signup(context.Background(), req)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User created successfully:\n")
	fmt.Printf("  ID: %s\n", result.User.ID)
	fmt.Printf("  Email: %s\n", result.User.Email)
	if result.User.Name != nil {
		fmt.Printf("  Name: %s\n", *result.User.Name)
	}
}
