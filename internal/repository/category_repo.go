package repository

import (
	"context"

	"go-stock-manager/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.CategoryOption, error)
}

type categoryRepo struct {
	db    *gorm.DB
	table string
}

func NewCategoryRepo(db *gorm.DB, tables Tables) CategoryRepository {
	return &categoryRepo{db: db, table: tables.Categories}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Table(r.table).Create(category).Error
}

func (r *categoryRepo) List(ctx context.Context) ([]model.CategoryOption, error) {
	options := []model.CategoryOption{}
	err := r.db.WithContext(ctx).Table(r.table).
		Select("id, nazwa").
		Order("id").
		Find(&options).Error
	return options, err
}
