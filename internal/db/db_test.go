package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classquest/classquest-api/internal/config"
)

func TestOpen_SQLite(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "plain path", path: filepath.Join(t.TempDir(), "school.db")},
		{name: "path with options", path: filepath.Join(t.TempDir(), "school.db") + "?_journal_mode=WAL"},
		{name: "in memory", path: ":memory:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: tt.path})
			require.NoError(t, err)

			sqlDB, err := gormDB.DB()
			require.NoError(t, err)
			t.Cleanup(func() { _ = sqlDB.Close() })

			assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

			var foreignKeys int
			require.NoError(t, gormDB.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
			assert.Equal(t, 1, foreignKeys)
		})
	}
}
