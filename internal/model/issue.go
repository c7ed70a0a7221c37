package model

// IssueRecord journals one committed stock issue.
type IssueRecord struct {
	JournalModel
	ProductID      int64 `gorm:"not null;index" json:"product_id"`
	Amount         int   `gorm:"not null" json:"amount"`
	QuantityBefore int   `gorm:"not null" json:"quantity_before"`
	QuantityAfter  int   `gorm:"not null" json:"quantity_after"`
}

func (IssueRecord) TableName() string {
	return "issue_records"
}
