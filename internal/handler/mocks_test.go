package handler_test

import (
	"context"

	"go-stock-manager/internal/model"
	"go-stock-manager/internal/service"

	"github.com/stretchr/testify/mock"
)

type CategoryServiceMock struct{ mock.Mock }

func (m *CategoryServiceMock) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	args := m.Called(ctx, name, description)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *CategoryServiceMock) ListCategories(ctx context.Context) ([]model.CategoryOption, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.CategoryOption)
	return items, args.Error(1)
}

type ProductServiceMock struct{ mock.Mock }

func (m *ProductServiceMock) ProductForm(ctx context.Context) (*service.ProductForm, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(*service.ProductForm)
	return f, args.Error(1)
}

func (m *ProductServiceMock) CreateProduct(ctx context.Context, input service.CreateProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProductServiceMock) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type ViewServiceMock struct{ mock.Mock }

func (m *ViewServiceMock) Refresh(ctx context.Context) (*service.View, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*service.View)
	return v, args.Error(1)
}
