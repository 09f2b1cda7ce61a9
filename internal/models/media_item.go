package models

import "time"

// MediaItem is a gallery entry backed by a file under the upload
// directory. The file and filename are immutable once created; only
// metadata may change afterwards.
type MediaItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:10;not null;index" json:"type"` // image | video, derived from upload MIME
	Title       string    `gorm:"size:255;not null" json:"title"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	Location    string    `gorm:"size:255" json:"location"`
	Date        string    `gorm:"size:10" json:"date"` // display date, YYYY-MM-DD
	Status      string    `gorm:"size:10;not null;default:'active';index" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (MediaItem) TableName() string { return "media_items" }
