package service

import (
	"context"

	"go-stock-manager/internal/model"
	"go-stock-manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CategoryPlaceholder stands in for a category name that could not be resolved.
const CategoryPlaceholder = "—"

const degradedWarning = "could not resolve category names (check the foreign key between products and categories); showing raw data"

type ViewRow struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID *int64          `json:"category_id"`
	Category   string          `json:"category"`
}

// View is the flat product table. Degraded is set when category names came
// from the fallback read and are all placeholders.
type View struct {
	Rows     []ViewRow `json:"rows"`
	Degraded bool      `json:"degraded"`
	Warning  string    `json:"warning,omitempty"`
}

type ViewService interface {
	Refresh(ctx context.Context) (*View, error)
}

type viewService struct {
	products repository.ProductRepository
	log      logrus.FieldLogger
}

func NewViewService(pRepo repository.ProductRepository, log logrus.FieldLogger) ViewService {
	return &viewService{products: pRepo, log: log}
}

// Refresh tries the joined read first and falls back to the plain product
// list when the store cannot resolve the relationship.
func (s *viewService) Refresh(ctx context.Context) (*View, error) {
	joined, err := s.products.ListWithCategoryName(ctx)
	if err == nil {
		return joinedView(joined), nil
	}
	s.log.WithError(err).Warn("joined product read failed, falling back to plain read")

	plain, err := s.products.List(ctx, "*")
	if err != nil {
		return nil, remote(err)
	}
	return plainView(plain), nil
}

func joinedView(rows []model.ProductWithCategory) *View {
	view := &View{Rows: make([]ViewRow, 0, len(rows))}
	for _, r := range rows {
		row := toRow(r.Product)
		if r.CategoryName != nil {
			row.Category = *r.CategoryName
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func plainView(products []model.Product) *View {
	view := &View{
		Rows:     make([]ViewRow, 0, len(products)),
		Degraded: true,
		Warning:  degradedWarning,
	}
	for _, p := range products {
		view.Rows = append(view.Rows, toRow(p))
	}
	return view
}

func toRow(p model.Product) ViewRow {
	return ViewRow{
		ID:         p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		Category:   CategoryPlaceholder,
	}
}
