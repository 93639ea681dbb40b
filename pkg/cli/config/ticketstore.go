package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/repository"
	"github.com/urfave/cli/v3"
)

// TicketStore holds ticket store configuration. Firestore is the production
// backend; a YAML seed file backs offline and demo runs.
type TicketStore struct {
	ProjectID  string
	DatabaseID string
	SeedFile   string
}

// Flags returns CLI flags for ticket store configuration
func (t *TicketStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Ticket store",
			Sources:     cli.EnvVars("ARGUS_FIRESTORE_PROJECT"),
			Destination: &t.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Ticket store",
			Value:       "(default)",
			Sources:     cli.EnvVars("ARGUS_FIRESTORE_DATABASE"),
			Destination: &t.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "YAML seed file backing an in-memory ticket store",
			Category:    "Ticket store",
			Sources:     cli.EnvVars("ARGUS_SEED_FILE"),
			Destination: &t.SeedFile,
		},
	}
}

// Configure creates the ticket store the flags describe
func (t *TicketStore) Configure(ctx context.Context) (interfaces.TicketStore, error) {
	logger := ctxlog.From(ctx)

	if t.ProjectID != "" && t.SeedFile != "" {
		return nil, goerr.New("firestore-project and seed-file are mutually exclusive",
			goerr.V("project", t.ProjectID),
			goerr.V("seedFile", t.SeedFile))
	}

	if t.ProjectID != "" {
		store, err := repository.NewFirestore(ctx, t.ProjectID, t.DatabaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", t.ProjectID),
				goerr.V("database", t.DatabaseID),
			)
		}
		return store, nil
	}

	if t.SeedFile != "" {
		store, err := repository.LoadSeedFile(t.SeedFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	logger.Warn("No ticket store configured, using an empty memory store. Reports will have no rows")
	return repository.NewMemory(), nil
}

// LogValue returns structured log value
func (t TicketStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", t.ProjectID),
		slog.String("database", t.DatabaseID),
		slog.String("seedFile", t.SeedFile),
	)
}
