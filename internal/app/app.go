package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/research-registry/internal/adapter/postgres"
	pgaccount "github.com/heartmarshall/research-registry/internal/adapter/postgres/account"
	pgproject "github.com/heartmarshall/research-registry/internal/adapter/postgres/project"
	"github.com/heartmarshall/research-registry/internal/adapter/postgres/researcher"
	"github.com/heartmarshall/research-registry/internal/app/seeder"
	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/internal/service/account"
	"github.com/heartmarshall/research-registry/internal/service/project"
)

// App holds the wired services of one process. Close releases the pool.
type App struct {
	Log      *slog.Logger
	Pool     *pgxpool.Pool
	Projects *project.Service
	Accounts *account.Service

	txm *postgres.TxManager
	cfg *config.Config
}

// New connects to the database and builds the services. Each service
// gets its own staging session so pending project changes never ride
// along with an account write.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	projectSession := postgres.NewSession(txm)
	projects := project.NewService(logger,
		pgproject.New(pool, projectSession),
		researcher.New(pool, projectSession),
	)

	accounts := account.NewService(logger,
		pgaccount.New(pool, postgres.NewSession(txm)),
		cfg.Auth,
	)

	logger.InfoContext(ctx, "application ready",
		slog.String("version", BuildVersion()),
		slog.String("application_name", cfg.Database.ApplicationName),
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	return &App{
		Log:      logger,
		Pool:     pool,
		Projects: projects,
		Accounts: accounts,
		txm:      txm,
		cfg:      cfg,
	}, nil
}

// Seeder returns a seeder whose repositories share one fresh session,
// so a seed run commits or fails as a whole.
func (a *App) Seeder(dryRun bool) *seeder.Seeder {
	session := postgres.NewSession(a.txm)
	return seeder.New(a.Log, session,
		researcher.New(a.Pool, session),
		pgproject.New(a.Pool, session),
		pgaccount.New(a.Pool, session),
		seeder.WithDryRun(dryRun),
		seeder.WithAuth(a.cfg.Auth),
	)
}

// Close releases the connection pool.
func (a *App) Close() {
	a.Pool.Close()
}
