package repository

import (
	"context"
	"errors"
	"strings"

	"go-stock-manager/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	// List returns the requested columns ("*" when none) of every product, ordered by id.
	List(ctx context.Context, fields ...string) ([]model.Product, error)
	// ListWithCategoryName resolves each product's category name in one query.
	// It fails with ErrNoRelationship when the store has no foreign key from
	// products to categories.
	ListWithCategoryName(ctx context.Context) ([]model.ProductWithCategory, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// UpdateQuantity overwrites the quantity of exactly one product.
	UpdateQuantity(ctx context.Context, id int64, newQuantity int) error
	// UpdateQuantityIfUnchanged writes newQuantity only while the stored
	// quantity still equals expected. It reports whether the row was written.
	UpdateQuantityIfUnchanged(ctx context.Context, id int64, expected, newQuantity int) (bool, error)
}

type productRepo struct {
	db     *gorm.DB
	tables Tables
}

func NewProductRepo(db *gorm.DB, tables Tables) ProductRepository {
	return &productRepo{db: db, tables: tables}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Table(r.tables.Products).Create(product).Error
}

func (r *productRepo) List(ctx context.Context, fields ...string) ([]model.Product, error) {
	if len(fields) == 0 {
		fields = []string{"*"}
	}
	products := []model.Product{}
	err := r.db.WithContext(ctx).Table(r.tables.Products).
		Select(strings.Join(fields, ", ")).
		Order("id").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ListWithCategoryName(ctx context.Context) ([]model.ProductWithCategory, error) {
	related, err := r.hasCategoryRelationship(ctx)
	if err != nil {
		return nil, err
	}
	if !related {
		return nil, ErrNoRelationship
	}

	rows := []model.ProductWithCategory{}
	err = r.db.WithContext(ctx).
		Table(quoteIdent(r.tables.Products) + " AS p").
		Select("p.id, p.nazwa, p.liczba, p.cena, p.kategoria, c.nazwa AS category_name").
		Joins("LEFT JOIN " + quoteIdent(r.tables.Categories) + " AS c ON c.id = p.kategoria").
		Order("p.id").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) hasCategoryRelationship(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = current_schema()
			AND tc.table_name = ?
			AND kcu.column_name = 'kategoria'
			AND ccu.table_name = ?`,
		r.tables.Products, r.tables.Categories,
	).Scan(&count).Error
	return count > 0, err
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Table(r.tables.Products).Where("id = ?", id).Take(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) UpdateQuantity(ctx context.Context, id int64, newQuantity int) error {
	res := r.db.WithContext(ctx).Table(r.tables.Products).
		Where("id = ?", id).
		Update("liczba", newQuantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) UpdateQuantityIfUnchanged(ctx context.Context, id int64, expected, newQuantity int) (bool, error) {
	res := r.db.WithContext(ctx).Table(r.tables.Products).
		Where("id = ? AND liczba = ?", id, expected).
		Update("liczba", newQuantity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
