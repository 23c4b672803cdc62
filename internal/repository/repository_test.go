package repository_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithDatabase("shoestore"),
		postgres.WithInitScripts(
			"../migrations/01_products.up.sql"),
	)
	if err != nil {
		// Run may hand back a started container together with the error
		return nil, "", errors.Join(fmt.Errorf("postgres.Run: %w", err), terminate(postgresContainer))
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", errors.Join(fmt.Errorf("pc.ConnectionString: %w", err), terminate(postgresContainer))
	}

	return postgresContainer, connStr, nil
}

func terminate(pc *postgres.PostgresContainer) error {
	if pc == nil {
		return nil
	}
	if err := testcontainers.TerminateContainer(pc); err != nil {
		return fmt.Errorf("testcontainers.TerminateContainer: %w", err)
	}
	return nil
}
