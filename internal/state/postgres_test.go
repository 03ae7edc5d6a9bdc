package state

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresMigrate(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS snapshots").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	s := NewPostgresFromPool(mock)
	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSave(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	blob := []byte(`{"roi":{"employees":20}}`)
	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(NamespaceKey, blob).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s := NewPostgresFromPool(mock)
	require.NoError(t, s.Save(context.Background(), NamespaceKey, blob))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoad(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	blob := []byte(`{"roi":{"employees":20}}`)
	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(NamespaceKey).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(blob))

	s := NewPostgresFromPool(mock)
	got, err := s.Load(context.Background(), NamespaceKey)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoadMissingKey(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs("offerdesk_state_v99").
		WillReturnRows(pgxmock.NewRows([]string{"data"}))

	s := NewPostgresFromPool(mock)
	got, err := s.Load(context.Background(), "offerdesk_state_v99")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
