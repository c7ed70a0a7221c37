package model

// Category groups products. Column names follow the existing store schema.
type Category struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:nazwa;type:text;not null" json:"name" validate:"required"`
	Description string `gorm:"column:opis;type:text" json:"description"`
}

// CategoryOption is the (id, name) pair used to fill a selection control.
type CategoryOption struct {
	ID   int64  `gorm:"column:id" json:"id"`
	Name string `gorm:"column:nazwa" json:"name"`
}
