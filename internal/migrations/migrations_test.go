package migrations

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		sql := string(body)
		assert.Contains(t, sql, "-- +goose Up", name)
		assert.Contains(t, sql, "-- +goose Down", name)
	}
}

func TestSchemaKeepsLogsOfDeletedTodos(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "00001_create_tables.sql")
	require.NoError(t, err)

	sql := string(body)
	start := strings.Index(sql, "CREATE TABLE todo_logs")
	require.NotEqual(t, -1, start)
	end := strings.Index(sql[start:], ");")
	require.NotEqual(t, -1, end)

	assert.NotContains(t, sql[start:start+end], "REFERENCES")
	assert.Contains(t, sql, "REFERENCES users (id) ON DELETE SET NULL")
	assert.Contains(t, sql, "REFERENCES categories (id) ON DELETE SET NULL")
}

func TestGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := gooseLogger{logger: zerolog.New(&buf)}

	l.Printf("OK   %s", "00001_create_tables.sql")
	assert.Contains(t, buf.String(), `"message":"OK   00001_create_tables.sql"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}
