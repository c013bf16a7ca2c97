package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct{ DBExecutor }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct{}

func (fakeDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	tx := fakeTx{db}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM venues"))
	assert.Equal(t, "insert", operation("  INSERT\nINTO booking_slots"))
	assert.Equal(t, "delete", operation("DELETE"))
}
