package family

import "time"

type MediaType string

const (
	MediaArticle MediaType = "article"
	MediaVideo   MediaType = "video"

	DefaultMediaType = MediaArticle
)

var MediaTypes = []MediaType{MediaArticle, MediaVideo}

type Item struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Summary     string    `gorm:"not null"`
	Content     *string   `gorm:"column:content"`
	MediaType   MediaType `gorm:"type:varchar(16);not null"`
	MediaURL    *string   `gorm:"column:media_url"`
	IsPublished bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "family_items"
}
