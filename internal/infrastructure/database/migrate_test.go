package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestInitMigrationCreatesTables(t *testing.T) {
	script, err := migrations.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "profiles", "messages"} {
		assert.True(t, strings.Contains(string(script), "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}
