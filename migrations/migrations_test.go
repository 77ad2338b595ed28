package migrations_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/migrations"
)

func Test_Migrations_AreEmbeddedAndAnnotated(t *testing.T) {
	// act
	files, err := fs.Glob(migrations.FS, "*.sql")

	// assert
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "00001_create_events_table.sql", files[0])

	for _, file := range files {
		raw, readErr := fs.ReadFile(migrations.FS, file)
		require.NoError(t, readErr)
		assert.Contains(t, string(raw), "-- +goose Up", file)
		assert.Contains(t, string(raw), "-- +goose Down", file)
	}
}
