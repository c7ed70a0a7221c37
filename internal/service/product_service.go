package service

import (
	"context"
	"strings"

	"go-stock-manager/internal/model"
	"go-stock-manager/internal/repository"
	"go-stock-manager/pkg/validator"

	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name       string          `json:"name" validate:"required"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	Price      decimal.Decimal `json:"price" validate:"gte=0"`
	CategoryID int64           `json:"category_id" validate:"required,gt=0"`
}

// ProductForm is what the product panel needs before it can be shown.
type ProductForm struct {
	Ready      bool                   `json:"ready"`
	Message    string                 `json:"message,omitempty"`
	Categories []model.CategoryOption `json:"categories"`
}

type ProductService interface {
	ProductForm(ctx context.Context) (*ProductForm, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	refresher  Refresher
}

func NewProductService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, refresher Refresher) ProductService {
	return &productService{
		products:   pRepo,
		categories: cRepo,
		refresher:  orNoop(refresher),
	}
}

func (s *productService) ProductForm(ctx context.Context) (*ProductForm, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, remote(err)
	}
	form := &ProductForm{Ready: len(categories) > 0, Categories: categories}
	if !form.Ready {
		form.Message = ErrNoCategories.Message
	}
	return form, nil
}

func (s *productService) CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, remote(err)
	}
	// No categories means the form is not offered at all.
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	input.Name = strings.TrimSpace(input.Name)
	if errs := validator.ValidateStruct(&input); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	if !hasCategory(categories, input.CategoryID) {
		return nil, invalid(ErrUnknownCategory, "category %d does not exist", input.CategoryID)
	}

	categoryID := input.CategoryID
	product := &model.Product{
		Name:       input.Name,
		Quantity:   input.Quantity,
		Price:      input.Price.Round(2),
		CategoryID: &categoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, remote(err)
	}

	s.refresher.Refresh("product_created")
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx, "*")
	if err != nil {
		return nil, remote(err)
	}
	return products, nil
}

func hasCategory(categories []model.CategoryOption, id int64) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
