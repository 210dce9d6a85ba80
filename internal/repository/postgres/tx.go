package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"palettehub/internal/port"
)

type txKey struct{}

// queryer is the query surface shared by *sqlx.DB and *sqlx.Tx. Repos run
// against the transaction carried on the context when one is present.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// q resolves the executor for a context: the enclosing transaction if the
// call runs inside TxManager.ExecTx, the pool otherwise.
func q(ctx context.Context, db *sqlx.DB) queryer {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

type txManager struct {
	db *sqlx.DB
}

// NewTxManager creates a sqlx-backed port.TxManager.
func NewTxManager(db *sqlx.DB) port.TxManager {
	return &txManager{db: db}
}

// ExecTx begins a transaction, stores it on the context for the repositories,
// and commits only if fn returns nil.
func (m *txManager) ExecTx(ctx context.Context, fn port.TxFn) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rolling back after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
