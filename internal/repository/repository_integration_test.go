package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go-stock-manager/internal/model"
	"go-stock-manager/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB connects to TEST_DATABASE_URL and creates throwaway tables.
func openTestDB(t *testing.T, withForeignKey bool) (*gorm.DB, Tables) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.Connect(database.Options{Endpoint: dsn, Key: os.Getenv("TEST_DATABASE_KEY")})
	if err != nil {
		t.Skipf("database not available: %v", err)
	}

	suffix := time.Now().UnixNano()
	tables := Tables{
		Products:   fmt.Sprintf("Produkty_%d", suffix),
		Categories: fmt.Sprintf("kategorie_%d", suffix),
	}
	require.NoError(t, Migrate(db, tables, withForeignKey))

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS " + quoteIdent(tables.Products))
		db.Exec("DROP TABLE IF EXISTS " + quoteIdent(tables.Categories))
	})
	return db, tables
}

func seed(t *testing.T, db *gorm.DB, tables Tables) (*model.Category, *model.Product) {
	t.Helper()
	ctx := context.Background()

	category := &model.Category{Name: "Beverages", Description: "drinks"}
	require.NoError(t, NewCategoryRepo(db, tables).Create(ctx, category))
	require.NotZero(t, category.ID)

	product := &model.Product{
		Name:       "Cola",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.50"),
		CategoryID: &category.ID,
	}
	require.NoError(t, NewProductRepo(db, tables).Create(ctx, product))
	require.NotZero(t, product.ID)
	return category, product
}

func TestProductRepo_JoinedRead(t *testing.T) {
	db, tables := openTestDB(t, true)
	_, product := seed(t, db, tables)

	rows, err := NewProductRepo(db, tables).ListWithCategoryName(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, product.ID, rows[0].ID)
	assert.Equal(t, "Cola", rows[0].Name)
	assert.Equal(t, 10, rows[0].Quantity)
	assert.True(t, decimal.RequireFromString("2.5").Equal(rows[0].Price))
	require.NotNil(t, rows[0].CategoryName)
	assert.Equal(t, "Beverages", *rows[0].CategoryName)
}

func TestProductRepo_JoinedReadWithoutRelationship(t *testing.T) {
	db, tables := openTestDB(t, false)
	seed(t, db, tables)

	_, err := NewProductRepo(db, tables).ListWithCategoryName(context.Background())
	assert.ErrorIs(t, err, ErrNoRelationship)

	plain, err := NewProductRepo(db, tables).List(context.Background(), "*")
	require.NoError(t, err)
	assert.Len(t, plain, 1)
}

func TestProductRepo_UpdateQuantity(t *testing.T) {
	db, tables := openTestDB(t, true)
	_, product := seed(t, db, tables)
	repo := NewProductRepo(db, tables)
	ctx := context.Background()

	require.NoError(t, repo.UpdateQuantity(ctx, product.ID, 6))
	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)

	written, err := repo.UpdateQuantityIfUnchanged(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = repo.UpdateQuantityIfUnchanged(ctx, product.ID, 6, 0)
	require.NoError(t, err)
	assert.True(t, written)

	assert.ErrorIs(t, repo.UpdateQuantity(ctx, product.ID+1000, 1), ErrNotFound)
	_, err = repo.FindByID(ctx, product.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepo_ListGrowsByOne(t *testing.T) {
	db, tables := openTestDB(t, false)
	repo := NewCategoryRepo(db, tables)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	require.NoError(t, repo.Create(ctx, &model.Category{Name: "Snacks"}))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Snacks", after[0].Name)
}

func TestDropCategoryForeignKey(t *testing.T) {
	db, tables := openTestDB(t, true)
	seed(t, db, tables)

	dropped, err := DropCategoryForeignKey(db, tables)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)

	_, err = NewProductRepo(db, tables).ListWithCategoryName(context.Background())
	assert.ErrorIs(t, err, ErrNoRelationship)
}
