package repository

import (
	"context"

	"go-stock-manager/internal/model"

	"gorm.io/gorm"
)

type IssueRepository interface {
	Create(ctx context.Context, record *model.IssueRecord) error
	// List returns the newest records first.
	List(ctx context.Context, limit int) ([]model.IssueRecord, error)
}

type issueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) IssueRepository {
	return &issueRepo{db}
}

func (r *issueRepo) Create(ctx context.Context, record *model.IssueRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *issueRepo) List(ctx context.Context, limit int) ([]model.IssueRecord, error) {
	records := []model.IssueRecord{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}
