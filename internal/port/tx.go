package port

import "context"

// TxFn runs within a transaction carried on the context.
type TxFn func(ctx context.Context) error

// TxManager executes a function inside one database transaction. Every
// multi-entity mutation (save + folder count, unsave + counters, folder
// delete + reassignment) goes through it so a failure rolls back all steps.
type TxManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
