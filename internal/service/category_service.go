package service

import (
	"context"
	"strings"

	"go-stock-manager/internal/model"
	"go-stock-manager/internal/repository"
	"go-stock-manager/pkg/validator"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.CategoryOption, error)
}

type categoryService struct {
	repo      repository.CategoryRepository
	refresher Refresher
}

func NewCategoryService(repo repository.CategoryRepository, refresher Refresher) CategoryService {
	return &categoryService{repo: repo, refresher: orNoop(refresher)}
}

func (s *categoryService) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	category := &model.Category{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, remote(err)
	}

	s.refresher.Refresh("category_created")
	return category, nil
}

// ListCategories returns every category; an empty list is a normal answer.
func (s *categoryService) ListCategories(ctx context.Context) ([]model.CategoryOption, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, remote(err)
	}
	return categories, nil
}
