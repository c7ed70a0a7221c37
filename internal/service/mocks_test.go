package service_test

import (
	"context"

	"go-stock-manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.CategoryOption, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.CategoryOption)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepoMock) List(ctx context.Context, fields ...string) ([]model.Product, error) {
	args := m.Called(ctx, fields)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListWithCategoryName(ctx context.Context) ([]model.ProductWithCategory, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ProductWithCategory)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) UpdateQuantity(ctx context.Context, id int64, newQuantity int) error {
	args := m.Called(ctx, id, newQuantity)
	return args.Error(0)
}

func (m *ProductRepoMock) UpdateQuantityIfUnchanged(ctx context.Context, id int64, expected, newQuantity int) (bool, error) {
	args := m.Called(ctx, id, expected, newQuantity)
	return args.Bool(0), args.Error(1)
}

type IssueRepoMock struct{ mock.Mock }

func (m *IssueRepoMock) Create(ctx context.Context, record *model.IssueRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *IssueRepoMock) List(ctx context.Context, limit int) ([]model.IssueRecord, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.IssueRecord)
	return items, args.Error(1)
}

type RefresherMock struct{ mock.Mock }

func (m *RefresherMock) Refresh(reason string) {
	m.Called(reason)
}
