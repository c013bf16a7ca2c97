package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
)

type stubTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (s *stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (s *stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (s *stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (s *stubTx) Commit() error {
	s.committed = true
	return s.commitErr
}
func (s *stubTx) Rollback() error {
	s.rolledBack = true
	return nil
}

type stubDB struct {
	txs  []*stubTx
	opts []*sql.TxOptions
}

func (d *stubDB) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &stubTx{}
	d.txs = append(d.txs, tx)
	d.opts = append(d.opts, opts)
	return tx, nil
}

func TestManager_DoSerializable_Commit(t *testing.T) {
	db := &stubDB{}
	m := NewTransactionManager(db, 3)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestManager_DoSerializable_RollbackOnError(t *testing.T) {
	db := &stubDB{}
	m := NewTransactionManager(db, 3)
	boom := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestManager_DoSerializable_RetriesSerializationFailure(t *testing.T) {
	db := &stubDB{}
	m := NewTransactionManager(db, 3)
	m.backoff = 0

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("wrapped: %v", &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, db.txs, 3)
}

func TestManager_DoSerializable_RetriesExhausted(t *testing.T) {
	db := &stubDB{}
	m := NewTransactionManager(db, 2)
	m.backoff = 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Len(t, db.txs, 2)
}

func TestManager_NestedReusesOuterTx(t *testing.T) {
	db := &stubDB{}
	m := NewTransactionManager(db, 3)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40P01"}))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.True(t, IsSerializationFailure(errors.New("pq: deadlock detected")))
	assert.False(t, IsSerializationFailure(nil))
}
