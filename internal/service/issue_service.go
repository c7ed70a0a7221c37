package service

import (
	"context"
	"errors"
	"fmt"

	"go-stock-manager/internal/model"
	"go-stock-manager/internal/repository"

	"github.com/sirupsen/logrus"
)

// IssueOption is one entry of the product selector.
type IssueOption struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	MaxAmount int    `json:"max_amount"`
}

type IssueService interface {
	Options(ctx context.Context) ([]IssueOption, error)
	Select(ctx context.Context, session *IssueSession, productID int64) error
	Submit(ctx context.Context, session *IssueSession, amount int) error
	Reset(session *IssueSession)
	Journal(ctx context.Context, limit int) ([]model.IssueRecord, error)
}

type issueService struct {
	products  repository.ProductRepository
	issues    repository.IssueRepository
	refresher Refresher
	log       logrus.FieldLogger
	guarded   bool
}

// NewIssueService builds the workflow. With guarded set, the commit only
// writes if the stored quantity still equals the one captured at selection;
// otherwise it overwrites blindly and concurrent issues can lose updates.
func NewIssueService(pRepo repository.ProductRepository, iRepo repository.IssueRepository, refresher Refresher, log logrus.FieldLogger, guarded bool) IssueService {
	return &issueService{
		products:  pRepo,
		issues:    iRepo,
		refresher: orNoop(refresher),
		log:       log,
		guarded:   guarded,
	}
}

func (s *issueService) Options(ctx context.Context) ([]IssueOption, error) {
	products, err := s.products.List(ctx, "id", "nazwa", "liczba")
	if err != nil {
		return nil, remote(err)
	}
	options := make([]IssueOption, 0, len(products))
	for _, p := range products {
		options = append(options, IssueOption{
			ID:        p.ID,
			Label:     fmt.Sprintf("%s (qty: %d)", p.Name, p.Quantity),
			MaxAmount: p.Quantity,
		})
	}
	return options, nil
}

func (s *issueService) Select(ctx context.Context, session *IssueSession, productID int64) error {
	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return remote(err)
	}
	session.capture(product.ID, product.Name, product.Quantity)
	return nil
}

func (s *issueService) Submit(ctx context.Context, session *IssueSession, amount int) error {
	if !session.AcceptsAmount() {
		return ErrNoProductSelected
	}

	session.State = StateValidating
	if amount < 1 {
		err := invalid(nil, "amount must be at least 1")
		session.reject(err.Error())
		return err
	}
	if amount > session.CapturedQuantity {
		err := invalid(ErrInsufficientStock, "cannot issue %d of %s, only %d in stock",
			amount, session.ProductName, session.CapturedQuantity)
		session.reject(err.Error())
		return err
	}

	session.State = StateCommitting
	before := session.CapturedQuantity
	after := before - amount

	if err := s.write(ctx, session, before, after); err != nil {
		return err
	}

	record := &model.IssueRecord{
		ProductID:      session.ProductID,
		Amount:         amount,
		QuantityBefore: before,
		QuantityAfter:  after,
	}
	if err := s.issues.Create(ctx, record); err != nil {
		s.log.WithError(err).WithField("product_id", session.ProductID).Warn("issue committed but journal write failed")
	}

	session.complete(after, fmt.Sprintf("issued %d of %s, %d left", amount, session.ProductName, after))
	s.refresher.Refresh("issue_committed")
	return nil
}

func (s *issueService) write(ctx context.Context, session *IssueSession, before, after int) error {
	if !s.guarded {
		if err := s.products.UpdateQuantity(ctx, session.ProductID, after); err != nil {
			err = remote(err)
			session.fail(err.Error())
			return err
		}
		return nil
	}

	written, err := s.products.UpdateQuantityIfUnchanged(ctx, session.ProductID, before, after)
	if err != nil {
		err = remote(err)
		session.fail(err.Error())
		return err
	}
	if written {
		return nil
	}

	// Someone else changed the stock; re-capture so the next attempt
	// validates against what is stored now.
	fresh, err := s.products.FindByID(ctx, session.ProductID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			err = remote(err)
		}
		session.fail(err.Error())
		return err
	}
	session.capture(fresh.ID, fresh.Name, fresh.Quantity)
	session.Message = fmt.Sprintf("%s: %d now in stock", ErrStockChanged, fresh.Quantity)
	return ErrStockChanged
}

func (s *issueService) Reset(session *IssueSession) {
	*session = NewIssueSession()
}

func (s *issueService) Journal(ctx context.Context, limit int) ([]model.IssueRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := s.issues.List(ctx, limit)
	if err != nil {
		return nil, remote(err)
	}
	return records, nil
}
