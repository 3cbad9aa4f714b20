package recipes

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategorySalad     Category = "salad"
	CategorySide      Category = "side"
	CategorySnack     Category = "snack"
	CategoryBeverage  Category = "beverage"
	CategoryAppetizer Category = "appetizer"
	CategoryOther     Category = "other"

	DefaultCategory = CategoryDinner
)

var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySalad,
	CategorySide,
	CategorySnack,
	CategoryBeverage,
	CategoryAppetizer,
	CategoryOther,
}

type Recipe struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Ingredients Lines     `gorm:"type:text;not null"`
	Steps       Lines     `gorm:"type:text;not null"`
	ImageURL    *string   `gorm:"column:image_url"`
	Category    Category  `gorm:"type:varchar(32);not null;index"`
	SubmittedBy *string   `gorm:"column:submitted_by"`
	PrepTime    *int      `gorm:"column:prep_time"`
	CookTime    *int      `gorm:"column:cook_time"`
	Serves      *int      `gorm:"column:serves"`
	Likes       int       `gorm:"not null"`
	Status      Status    `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// Lines is an ordered list of text lines stored as a JSON array.
type Lines []string

func (l Lines) Value() (driver.Value, error) {
	return l.encode(), nil
}

func (l *Lines) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = Lines{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("recipes: cannot scan %T into Lines", src)
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Rows written by hand may hold plain text.
		*l = ParseLines(string(raw))
		return nil
	}
	*l = Lines(decoded)
	return nil
}

// encode returns the stored form. Catalog search matches against it.
func (l Lines) encode() string {
	items := []string(l)
	if items == nil {
		items = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "[]"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
