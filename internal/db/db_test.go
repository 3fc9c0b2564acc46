package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMemoryDB(t *testing.T) {
	database, err := InitMemoryDB()
	require.NoError(t, err)
	defer database.Close()

	var tables []string
	err = database.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('records', 'sessions') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"records", "sessions"}, tables)
}

func TestRunMigrationsTwice(t *testing.T) {
	database, err := InitMemoryDB()
	require.NoError(t, err)
	defer database.Close()

	// Nothing left to apply is not an error
	assert.NoError(t, RunMigrations(database.DB))
}
