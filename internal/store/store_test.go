package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/villela/precificador/internal/db"
	"github.com/villela/precificador/internal/migrations"
	"github.com/villela/precificador/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "store-test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err, "open sqlite database")
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database.DB, "../../migrations"), "run migrations")

	return New(database)
}

func intPtr(v int64) *int64 {
	return &v
}

func addUnitMaterial(t *testing.T, s *Store, name string, price float64) int64 {
	t.Helper()
	id, err := s.AddMaterial(name, "", model.MeasureUnit, price, nil, nil)
	require.NoError(t, err)
	return id
}

func addAreaMaterial(t *testing.T, s *Store, name string, price float64, baseWidth, baseLength int64) int64 {
	t.Helper()
	id, err := s.AddMaterial(name, "", model.MeasureArea, price, intPtr(baseWidth), intPtr(baseLength))
	require.NoError(t, err)
	return id
}
