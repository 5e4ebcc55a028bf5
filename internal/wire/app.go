package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanthe421/request-mesh/internal/config"
	"github.com/lanthe421/request-mesh/internal/metrics"

	pgdb "github.com/lanthe421/request-mesh/internal/adapter/postgres"
	pgeventbus "github.com/lanthe421/request-mesh/internal/adapter/postgres/eventbus"
	pgoperator "github.com/lanthe421/request-mesh/internal/adapter/postgres/operator"
	pgrequest "github.com/lanthe421/request-mesh/internal/adapter/postgres/request"
	pgsource "github.com/lanthe421/request-mesh/internal/adapter/postgres/source"
	pgstats "github.com/lanthe421/request-mesh/internal/adapter/postgres/stats"
	pguser "github.com/lanthe421/request-mesh/internal/adapter/postgres/user"

	distsvc "github.com/lanthe421/request-mesh/internal/service/distributor"
	operatorsvc "github.com/lanthe421/request-mesh/internal/service/operator"
	requestsvc "github.com/lanthe421/request-mesh/internal/service/request"
	sourcesvc "github.com/lanthe421/request-mesh/internal/service/source"
	statssvc "github.com/lanthe421/request-mesh/internal/service/stats"

	"github.com/lanthe421/request-mesh/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool   *pgxpool.Pool
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// ── Database ─────────────────────────────────────────────────────────────
	pool, err := pgdb.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	operatorRepo := pgoperator.New(pool)
	sourceRepo := pgsource.New(pool)
	userRepo := pguser.New(pool)
	requestRepo := pgrequest.New(pool)
	statsReader := pgstats.New(pool)
	eventBus := pgeventbus.New(pool)

	// ── Services ─────────────────────────────────────────────────────────────

	// The engine sees operatorRepo only through the Directory slice:
	// eligibility snapshot + atomic commit.
	engine := distsvc.NewService(operatorRepo, requestRepo, eventBus, nil, cfg.Distribution.MaxAttempts)

	operatorSvcInstance := operatorsvc.NewService(operatorRepo, eventBus)
	sourceSvcInstance := sourcesvc.NewService(sourceRepo, operatorRepo)
	requestSvcInstance := requestsvc.NewService(requestRepo, userRepo, sourceRepo, operatorRepo, engine, eventBus)
	statsSvcInstance := statssvc.NewService(operatorRepo, statsReader)

	if err := metrics.Register(nil); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		operatorSvcInstance,
		sourceSvcInstance,
		requestSvcInstance,
		statsSvcInstance,
		eventBus,
	)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	slog.Info("application wired", "addr", cfg.Server.Addr, "max_attempts", cfg.Distribution.MaxAttempts)

	return &App{
		Pool:   pool,
		Server: server,
	}, nil
}
