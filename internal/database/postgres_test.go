package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host: "db", Port: "5432", User: "omnipos", Password: "secret",
		DBName: "retail", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://omnipos:secret@db:5432/retail?sslmode=disable", cfg.DSN())
}

func TestNewSQLiteMemory(t *testing.T) {
	db, err := NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestNewSQLiteFile(t *testing.T) {
	path := t.TempDir() + "/nested/retail.db"
	db, err := NewSQLite(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t (x INTEGER)")
	assert.NoError(t, err)
}
