package repositories

import (
	"context"
	"testing"

	"davetiye.link/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Initialize(db, true, true))
	return db
}

func TestThemeRepository(t *testing.T) {
	repo := NewThemeRepositoryWithDB(newSeededDB(t))
	ctx := context.Background()

	themes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 3)
	assert.Equal(t, []string{"classic", "romantic", "modern"}, []string{themes[0].Code, themes[1].Code, themes[2].Code})
	assert.True(t, themes[0].IsDefault)

	assert.Equal(t, "Romantic Rose", themes[1].Name)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGiftRepository(t *testing.T) {
	repo := NewGiftRepositoryWithDB(newSeededDB(t))
	ctx := context.Background()

	gifts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	codes := make([]string, 0, len(gifts))
	for _, g := range gifts {
		codes = append(codes, g.Code)
	}
	assert.Equal(t, []string{"watch", "travel", "home", "dinner"}, codes)
	assert.Equal(t, "✈️", gifts[1].Icon)
}

func TestSeedingTwiceIsIdempotent(t *testing.T) {
	db := newSeededDB(t)
	require.NoError(t, database.Initialize(db, false, true))

	ctx := context.Background()
	gifts, err := NewGiftRepositoryWithDB(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, gifts, 4)

	count, err := NewThemeRepositoryWithDB(db).CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
