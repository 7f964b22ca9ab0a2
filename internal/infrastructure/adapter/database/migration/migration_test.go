package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending(t *testing.T) {
	t.Run("fresh database runs everything", func(t *testing.T) {
		steps, err := Pending("")

		require.NoError(t, err)
		assert.Len(t, steps, len(Migrations))
		assert.Equal(t, "1.0.0", steps[0].Version)
	})

	t.Run("partially migrated database runs the rest", func(t *testing.T) {
		steps, err := Pending("1.0.0")

		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "1.1.0", steps[0].Version)
	})

	t.Run("current database runs nothing", func(t *testing.T) {
		steps, err := Pending(CurrentSchemaVersion)

		require.NoError(t, err)
		assert.Empty(t, steps)
	})

	t.Run("unknown version is an error", func(t *testing.T) {
		_, err := Pending("9.9.9")

		assert.ErrorContains(t, err, `unknown schema version "9.9.9"`)
	})
}

func TestMigrationsAreOrdered(t *testing.T) {
	seen := map[string]bool{}
	for _, step := range Migrations {
		assert.False(t, seen[step.Version], "duplicate version %s", step.Version)
		assert.NotEmpty(t, step.Description)
		assert.NotNil(t, step.Up)
		seen[step.Version] = true
	}
	assert.Equal(t, Migrations[len(Migrations)-1].Version, CurrentSchemaVersion)
}
