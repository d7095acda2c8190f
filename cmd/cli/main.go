package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/cmd/cli/commands"
	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/db"
	"github.com/jakechorley/shift-rota/pkg/postgres"
	"github.com/jakechorley/shift-rota/pkg/sqlite"
	"github.com/jakechorley/shift-rota/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	logDir  string
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "shift-rota",
		Short: "Shift rota - two-shift roster generation",
		Long: `A CLI tool for generating Morning/Afternoon rosters from a leave table,
managing the people on the roster and pinning fixed shifts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: dev, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "logs", "Directory for JSON log files")
	_ = rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.ShowScheduleCmd(app))
	rootCmd.AddCommand(commands.AddPersonCmd(app))
	rootCmd.AddCommand(commands.EditPersonCmd(app))
	rootCmd.AddCommand(commands.TogglePersonCmd(app))
	rootCmd.AddCommand(commands.RemovePersonCmd(app))
	rootCmd.AddCommand(commands.ListPeopleCmd(app))
	rootCmd.AddCommand(commands.FixShiftCmd(app))
	rootCmd.AddCommand(commands.UnfixShiftCmd(app))
	rootCmd.AddCommand(commands.ListFixedCmd(app))
	rootCmd.AddCommand(commands.SyncPeopleCmd(app))
	rootCmd.AddCommand(commands.AvailabilityCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and database
func initApp(app *commands.AppContext) error {
	var err error
	app.Env = env
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, logging.Options{Dir: logDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("store", app.Cfg.Store.Driver))

	// Open the record store
	app.Database, err = openDatabase(app.Ctx, app.Cfg, app.Logger)
	if err != nil {
		return err
	}
	app.Logger.Debug("Database initialized successfully")

	return nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Database, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		logger.Debug("Connecting to postgres")
		database, err := postgres.Open(ctx, cfg.Store.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return database, nil
	case config.DriverSQLite:
		logger.Debug("Opening sqlite store", zap.String("path", cfg.Store.SQLitePath))
		database, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return database, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
