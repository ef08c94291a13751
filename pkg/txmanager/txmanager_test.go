package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr   error
	rollbackErr error

	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return t.rollbackErr
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
	gotOpts  *sql.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.gotOpts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		// Транзакция должна быть доступна репозиториям через context
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestDoSerializable_SetsIsolationLevel(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, beginner.gotOpts)
	assert.Equal(t, sql.LevelSerializable, beginner.gotOpts.Isolation)
}

func TestDo_RollsBackOnError(t *testing.T) {
	errConflict := errors.New("interval taken")
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return errConflict
	})

	assert.ErrorIs(t, err, errConflict)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestDo_FnErrorSurvivesRollbackFailure(t *testing.T) {
	errConflict := errors.New("interval taken")
	tx := &fakeTx{rollbackErr: errors.New("connection lost")}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return errConflict
	})

	// Ошибка fn определяет статус ответа и не должна теряться
	// за ошибкой rollback'а
	assert.ErrorIs(t, err, errConflict)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestDo_CommitErrorWrapped(t *testing.T) {
	commitErr := errors.New("serialization failure")
	tx := &fakeTx{commitErr: commitErr}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, commitErr)
}

func TestDo_BeginError(t *testing.T) {
	beginErr := errors.New("too many connections")
	m := NewTransactionManager(&fakeBeginner{beginErr: beginErr})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
}
