package repository

import (
	"fmt"
	"strings"

	"go-stock-manager/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the category, product and journal tables. withForeignKey
// adds the products -> categories constraint the joined read depends on.
func Migrate(db *gorm.DB, tables Tables, withForeignKey bool) error {
	if err := db.Table(tables.Categories).AutoMigrate(&model.Category{}); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Categories, err)
	}
	if err := db.Table(tables.Products).AutoMigrate(&model.Product{}); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Products, err)
	}
	if err := db.AutoMigrate(&model.IssueRecord{}); err != nil {
		return fmt.Errorf("migrate issue journal: %w", err)
	}

	if err := ensureConstraint(db, tables.Products, constraintName("chk", tables.Products, "liczba"),
		"CHECK (liczba >= 0)"); err != nil {
		return err
	}

	if withForeignKey {
		definition := fmt.Sprintf("FOREIGN KEY (kategoria) REFERENCES %s (id)", quoteIdent(tables.Categories))
		if err := ensureConstraint(db, tables.Products, constraintName("fk", tables.Products, "kategoria"), definition); err != nil {
			return err
		}
	}
	return nil
}

// DropCategoryForeignKey removes every foreign key on products.kategoria,
// whatever its name. The joined read degrades afterwards.
func DropCategoryForeignKey(db *gorm.DB, tables Tables) (int, error) {
	var names []string
	err := db.Raw(`
		SELECT DISTINCT tc.constraint_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = current_schema()
			AND tc.table_name = ?
			AND kcu.column_name = 'kategoria'`,
		tables.Products,
	).Scan(&names).Error
	if err != nil {
		return 0, err
	}

	for _, name := range names {
		stmt := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s", quoteIdent(tables.Products), quoteIdent(name))
		if err := db.Exec(stmt).Error; err != nil {
			return 0, fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return len(names), nil
}

func ensureConstraint(db *gorm.DB, table, name, definition string) error {
	var count int64
	err := db.Raw(`
		SELECT COUNT(*) FROM information_schema.table_constraints
		WHERE table_schema = current_schema() AND table_name = ? AND constraint_name = ?`,
		table, name,
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", quoteIdent(table), quoteIdent(name), definition)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("add constraint %s: %w", name, err)
	}
	return nil
}

func constraintName(prefix, table, column string) string {
	return prefix + "_" + strings.ToLower(table) + "_" + column
}
