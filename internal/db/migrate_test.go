package db

import (
	"io/fs"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-scheduler/db/migrations"
)

func TestWithSearchPath(t *testing.T) {
	addr, err := url.Parse("postgres://u:p@localhost:5432/ads?sslmode=disable")
	require.NoError(t, err)

	got, err := url.Parse(WithSearchPath(*addr, "budget"))
	require.NoError(t, err)
	assert.Equal(t, "budget", got.Query().Get("search_path"))
	assert.Equal(t, "disable", got.Query().Get("sslmode"))
	assert.Empty(t, addr.Query().Get("search_path"), "input is not modified")

	assert.Equal(t, addr.String(), WithSearchPath(*addr, ""))
}

func TestMigrationsCoverVersion(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, migrations.Version)
	assert.Len(t, downs, migrations.Version)
}
