package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/storage/memory"
	"github.com/aanand-mishra/school-api/internal/storage/sqlite"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	store, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverMemory}})
	require.NoError(t, err)
	assert.IsType(t, &memory.Memory{}, store)

	store, err = openStorage(ctx, &config.Config{
		Storage:     config.Storage{Driver: config.DriverSQLite},
		StoragePath: filepath.Join(t.TempDir(), "school.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SQLite{}, store)
	assert.NoError(t, store.Close())

	_, err = openStorage(ctx, &config.Config{Storage: config.Storage{Driver: "mongo"}})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{"dev", "staging", "prod", ""} {
		assert.NotNil(t, setupLogger(env), env)
	}
}
