package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TextArray is a text[] column on PostgreSQL. Other dialects store the same
// array literal in a text column.
type TextArray []string

// Value implements driver.Valuer.
func (a TextArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return pq.StringArray(a).Value()
}

// Scan implements sql.Scanner.
func (a *TextArray) Scan(src any) error {
	return (*pq.StringArray)(a).Scan(src)
}

// GormDBDataType picks the column type per dialect.
func (TextArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
