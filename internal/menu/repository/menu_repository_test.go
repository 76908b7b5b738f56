package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazhicho/internal/domain"
	"kazhicho/internal/errors"
	"kazhicho/internal/testutil"
)

// Unit Tests

func TestNewMySQLMenuRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLMenuRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestMenuRepository_InsertAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	id, err := repo.Insert(context.Background(), domain.MenuItem{
		Name:        "Masala Dosa",
		Description: "Crispy dosa with potato masala",
		PriceCents:  15000,
		Available:   true,
		ImageURL:    "https://example.com/dosa.jpg",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "Masala Dosa", items[0].Name)
	assert.Equal(t, int64(15000), items[0].PriceCents)
	assert.True(t, items[0].Available)
}

func TestMenuRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	item, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)
	assert.Nil(t, item)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestMenuRepository_SetAvailability(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	id, err := repo.Insert(context.Background(), domain.MenuItem{Name: "Chai", PriceCents: 3000, Available: true})
	require.NoError(t, err)

	require.NoError(t, repo.SetAvailability(context.Background(), id, false))

	item, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, item.Available)
}

func TestMenuRepository_SetAvailability_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	err := repo.SetAvailability(context.Background(), 9999, false)
	assert.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMenuRepository_UpdatePrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	id, err := repo.Insert(context.Background(), domain.MenuItem{Name: "Samosa", PriceCents: 4000, Available: true})
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePrice(context.Background(), id, 4500))

	item, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), item.PriceCents)
}
