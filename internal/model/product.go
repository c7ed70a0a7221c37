package model

import "github.com/shopspring/decimal"

type Product struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string          `gorm:"column:nazwa;type:text;not null" json:"name"`
	Quantity   int             `gorm:"column:liczba;not null;default:0" json:"quantity"`
	Price      decimal.Decimal `gorm:"column:cena;type:numeric(10,2);not null;default:0" json:"price"`
	CategoryID *int64          `gorm:"column:kategoria" json:"category_id"` // nullable: rows may be written out-of-band
}

// ProductWithCategory is a row of the joined read. CategoryName is nil when
// the reference points nowhere.
type ProductWithCategory struct {
	Product
	CategoryName *string `gorm:"column:category_name" json:"category_name"`
}
