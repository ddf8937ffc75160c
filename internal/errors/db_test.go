package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTimeout(MapDBError(context.DeadlineExceeded)))
	assert.True(t, IsCanceled(MapDBError(context.Canceled)))
}

func TestMapDBError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapDBError(pgx.ErrNoRows)
	assert.True(t, IsNotFound(err))
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	t.Parallel()

	t.Run("column name metadata", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ColumnName: "email"}
		err := MapDBError(pgErr)
		assert.True(t, IsConflict(err))
		assert.Equal(t, "email", GetField(err))
	})

	t.Run("field parsed from detail", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.UniqueViolation,
			Detail: `Key (email)=(user@example.com) already exists.`,
		}
		err := MapDBError(pgErr)
		assert.True(t, IsConflict(err))
		assert.Equal(t, "email", GetField(err))
	})
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, TableName: "improvements"}
	err := MapDBError(pgErr)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "resume")
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "content"}
	err := MapDBError(pgErr)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "content", GetField(err))
}

func TestMapDBError_UnknownPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	err := MapDBError(pgErr)
	assert.True(t, IsInternal(err))
}

func TestMapDBError_PassThrough(t *testing.T) {
	t.Parallel()

	plain := errors.New("not a db error")
	assert.Equal(t, plain, MapDBError(plain))
}
