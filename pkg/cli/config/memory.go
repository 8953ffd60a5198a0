package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/repository/firestore"
	"github.com/secmon-lab/trendchat/pkg/repository/memory"
	"github.com/secmon-lab/trendchat/pkg/repository/postgres"
	"github.com/urfave/cli/v3"
)

// Memory selects the backend of the memory and history store. The default
// in-process store loses data on restart.
type Memory struct {
	backend string

	firestoreProjectID  string
	firestoreDatabaseID string

	postgresDSN string `masq:"secret"`
}

func (x *Memory) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "memory-backend",
			Usage:       "Memory store backend [memory|firestore|postgres]",
			Category:    "Memory",
			Sources:     cli.EnvVars("TRENDCHAT_MEMORY_BACKEND"),
			Value:       "memory",
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Memory",
			Sources:     cli.EnvVars("TRENDCHAT_FIRESTORE_PROJECT_ID"),
			Destination: &x.firestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Memory",
			Sources:     cli.EnvVars("TRENDCHAT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.firestoreDatabaseID,
		},
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "PostgreSQL DSN",
			Category:    "Memory",
			Sources:     cli.EnvVars("TRENDCHAT_POSTGRES_DSN"),
			Destination: &x.postgresDSN,
		},
	}
}

func (x *Memory) NewRepository(ctx context.Context) (interfaces.MemoryRepository, error) {
	switch x.backend {
	case "", "memory":
		return memory.New(), nil

	case "firestore":
		if x.firestoreProjectID == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for the firestore backend")
		}
		return firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID)

	case "postgres":
		if x.postgresDSN == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "postgres-dsn is required for the postgres backend")
		}
		return postgres.New(ctx, x.postgresDSN)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown memory backend", goerr.V("backend", x.backend))
	}
}

func (x *Memory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("backend", x.backend),
		slog.Any("firestoreProjectID", x.firestoreProjectID),
		slog.Any("firestoreDatabaseID", x.firestoreDatabaseID),
		slog.Int("postgresDSN.len", len(x.postgresDSN)),
	)
}
