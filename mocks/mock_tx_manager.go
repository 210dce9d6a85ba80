package mocks

import (
	"context"

	"palettehub/internal/port"
)

// MockTxManager runs the transaction function inline without a database.
type MockTxManager struct{}

func (m *MockTxManager) ExecTx(ctx context.Context, fn port.TxFn) error {
	return fn(ctx)
}
