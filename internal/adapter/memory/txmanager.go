package memory

import "context"

type txCtxKey struct{}

func withTx(ctx context.Context, db *DB) context.Context {
	return context.WithValue(ctx, txCtxKey{}, db)
}

func inTx(ctx context.Context, db *DB) bool {
	owner, ok := ctx.Value(txCtxKey{}).(*DB)
	return ok && owner == db
}

// TxManager runs a group of repository calls atomically. The write lock is
// held for the whole callback, so concurrent writers are serialized.
// Nested RunInTx calls on the same DB join the outer transaction.
type TxManager struct {
	db *DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn inside a transaction.
// On error from fn: restores the tables as they were before fn and returns the error.
// On panic from fn: restores the tables and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inTx(ctx, m.db) {
		return fn(ctx)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	snapshot := m.db.tables.clone()

	defer func() {
		if r := recover(); r != nil {
			m.db.tables = snapshot
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, m.db)); err != nil {
		m.db.tables = snapshot
		return err
	}

	return nil
}
