// Package cli builds the seed-catalog and seed-tenant commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/medora/tenant-seeder/internal/adapters/database"
	"github.com/medora/tenant-seeder/internal/adapters/events"
	"github.com/medora/tenant-seeder/internal/adapters/lock"
	"github.com/medora/tenant-seeder/internal/application/services"
	"github.com/medora/tenant-seeder/internal/domain/providers"
	dbclient "github.com/medora/tenant-seeder/internal/infrastructure/clients/database"
	redisclient "github.com/medora/tenant-seeder/internal/infrastructure/clients/redis"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
	"github.com/medora/tenant-seeder/internal/seeddata"
	"github.com/medora/tenant-seeder/pkg/config"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
	"github.com/medora/tenant-seeder/pkg/secrets"
)

// Database is the connection pool a run draws its single connection from
type Database interface {
	Conn(ctx context.Context) (*sqlx.Conn, error)
	Driver() string
	Close() error
}

// Seeder is satisfied by the catalog and tenant seeders
type Seeder interface {
	Run(ctx context.Context, tenantSchema string) (*services.RunSummary, error)
}

// App holds the collaborators of a command. Zero fields fall back to the
// production implementations.
type App struct {
	LoadConfig func(ctx context.Context) (*config.Config, error)
	Connect    func(ctx context.Context, cfg config.DatabaseConfig) (Database, error)
	Lock       func(ctx context.Context, cfg *config.Config) (providers.LockProvider, func() error, error)
	Publisher  func(ctx context.Context, cfg *config.Config) (providers.RunEventPublisher, func() error, error)
	Stdout     io.Writer
	Stderr     io.Writer
}

func (a *App) withDefaults() *App {
	out := *a
	if out.LoadConfig == nil {
		out.LoadConfig = loadConfig
	}
	if out.Connect == nil {
		out.Connect = connect
	}
	if out.Lock == nil {
		out.Lock = newLock
	}
	if out.Publisher == nil {
		out.Publisher = newPublisher
	}
	if out.Stdout == nil {
		out.Stdout = os.Stdout
	}
	if out.Stderr == nil {
		out.Stderr = os.Stderr
	}
	return &out
}

// loadConfig applies Vault-held credentials to the environment, then reads it
func loadConfig(ctx context.Context) (*config.Config, error) {
	if _, err := secrets.ApplyDatabaseCredentials(ctx, secrets.LoadVaultConfigFromEnv()); err != nil {
		return nil, fmt.Errorf("failed to load credentials from vault: %w", err)
	}
	return config.Load()
}

func connect(ctx context.Context, cfg config.DatabaseConfig) (Database, error) {
	client, err := dbclient.NewClient(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newLock(ctx context.Context, cfg *config.Config) (providers.LockProvider, func() error, error) {
	if !cfg.Lock.Enabled {
		return lock.NoopLock{}, func() error { return nil }, nil
	}
	client, err := redisclient.NewClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return lock.NewRedisLock(client), client.Close, nil
}

func newPublisher(ctx context.Context, cfg *config.Config) (providers.RunEventPublisher, func() error, error) {
	if !cfg.Events.Enabled {
		return events.NoopRunPublisher{}, func() error { return nil }, nil
	}
	client, err := redisclient.NewClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return events.NewRedisRunPublisher(client, cfg.Events.Channel), client.Close, nil
}

// NewCatalogCommand builds seed-catalog
func NewCatalogCommand(app *App) *cobra.Command {
	return newSeedCommand(app, services.CommandSeedCatalog,
		"Seed the medicine, procedure and lab test catalogs of a tenant schema",
		func(deps services.SeederDeps) Seeder { return services.NewCatalogSeeder(deps) })
}

// NewTenantCommand builds seed-tenant
func NewTenantCommand(app *App) *cobra.Command {
	return newSeedCommand(app, services.CommandSeedTenant,
		"Seed demo doctors and patients of a tenant schema and backfill patient UIDs",
		func(deps services.SeederDeps) Seeder { return services.NewTenantSeeder(deps) })
}

func newSeedCommand(app *App, name, short string, build func(services.SeederDeps) Seeder) *cobra.Command {
	app = app.withDefaults()
	var dataFile string

	cmd := &cobra.Command{
		Use:   name + " <SCHEMA_NAME>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return apperrors.NewUsageError(err.Error())
			}
			if strings.TrimSpace(args[0]) == "" {
				return apperrors.NewUsageError("SCHEMA_NAME must not be empty")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.Context(), name, args[0], dataFile, build)
		},
	}
	cmd.Flags().StringVar(&dataFile, "data-file", "", "YAML file replacing the built-in reference data (overrides SEED_DATA_FILE)")
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	return cmd
}

func (a *App) run(ctx context.Context, command, schema, dataFile string, build func(services.SeederDeps) Seeder) (err error) {
	cfg, err := a.LoadConfig(ctx)
	if err != nil {
		return err
	}
	if dataFile != "" {
		cfg.Seed.DataFile = dataFile
	}

	if err := observability.InitLogger(cfg.Log, cfg.OTEL.ServiceName, a.Stderr); err != nil {
		return apperrors.NewConfigError("invalid logging configuration", err)
	}
	ctx, runID := observability.WithRun(ctx, command, schema)
	logger := observability.LoggerFromContext(ctx)

	shutdown, err := observability.Setup(ctx, cfg.OTEL)
	if err != nil {
		return apperrors.NewInternalError("failed to initialize telemetry", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	metrics, err := observability.InitSeedMetrics()
	if err != nil {
		return apperrors.NewInternalError("failed to create seed metrics", err)
	}

	data, err := seeddata.Load(cfg.Seed.DataFile)
	if err != nil {
		return err
	}

	ctx, span := observability.StartSpan(ctx, command)
	defer func() {
		observability.RecordError(span, err)
		span.End()
	}()

	logger.Info().Str("driver", cfg.Database.Driver).Str("host", cfg.Database.Host).Msg("connecting")
	db, err := a.Connect(ctx, cfg.Database.WithSchema(schema))
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close connection pool")
		}
	}()

	locker, closeLocker, err := a.Lock(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLocker() }()

	publisher, closePublisher, pubErr := a.Publisher(ctx, cfg)
	if pubErr != nil {
		logger.Warn().Err(pubErr).Msg("run events disabled for this run")
		publisher, closePublisher = events.NoopRunPublisher{}, func() error { return nil }
	}
	defer func() { _ = closePublisher() }()

	release, err := locker.Acquire(ctx, lock.Key(schema), cfg.Lock.TTL)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to release run lock")
		}
	}()

	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn().Err(err).Msg("failed to release connection")
		}
	}()

	schemaRepo, err := database.NewSchemaAdapter(conn, db.Driver())
	if err != nil {
		return err
	}
	seedRepo, err := database.NewSeedAdapter(conn, db.Driver())
	if err != nil {
		return err
	}

	seeder := build(services.SeederDeps{
		Schema:     schemaRepo,
		Seeds:      seedRepo,
		Data:       data,
		Metrics:    metrics,
		RandomSeed: cfg.Seed.RandomSeed,
	})

	logger.Info().Str("run_id", runID).Msg("seeding started")
	summary, err := seeder.Run(ctx, schema)
	if summary != nil {
		summary.Log(ctx)
		if printErr := summary.Print(a.Stdout); printErr != nil {
			logger.Warn().Err(printErr).Msg("failed to print summary")
		}
		if pubErr := publisher.PublishRunCompleted(ctx, summary.Event(runID, err)); pubErr != nil {
			logger.Warn().Err(pubErr).Msg("failed to publish run event")
		}
	}
	return err
}

// Execute runs cmd with SIGINT/SIGTERM cancellation and maps the outcome to
// a process exit code. Rows committed before an interruption stay; a re-run
// picks up where this one stopped.
func Execute(cmd *cobra.Command) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "✗ %v\n", err)
		if apperrors.IsType(err, apperrors.ErrorTypeUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}
