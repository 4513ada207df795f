package testutil

import (
	"context"

	"github.com/cadencehq/cadence/ent"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
)

// MockPostgresClient implements postgres.IClient for tests that never touch a
// real database. WithTx runs the function directly; there is no transaction.
type MockPostgresClient struct {
	logger *logger.Logger
}

func NewMockPostgresClient(logger *logger.Logger) postgres.IClient {
	return &MockPostgresClient{logger: logger}
}

func (m *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (m *MockPostgresClient) TxFromContext(ctx context.Context) *ent.Tx {
	return nil
}

func (m *MockPostgresClient) Querier(ctx context.Context) *ent.Client {
	return nil
}
