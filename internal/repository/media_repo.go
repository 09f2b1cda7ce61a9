package repository

import (
	"lila/internal/domain"
	"lila/internal/models"

	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// List returns media items newest first. category "all" (or empty)
// means no category filter; type and status match exactly when set.
func (r *MediaRepository) List(category, mediaType, status string) ([]models.MediaItem, error) {
	q := r.db.Model(&models.MediaItem{})
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if mediaType != "" {
		q = q.Where("type = ?", mediaType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.MediaItem
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *MediaRepository) GetByID(id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

func (r *MediaRepository) Save(item *models.MediaItem) error {
	return r.db.Save(item).Error
}

func (r *MediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaItem{}, id).Error
}

type MediaStats struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	Images     int64            `json:"images"`
	Videos     int64            `json:"videos"`
	Categories map[string]int64 `json:"categories"`
}

func (r *MediaRepository) Stats() (*MediaStats, error) {
	stats := &MediaStats{Categories: make(map[string]int64)}
	if err := r.db.Model(&models.MediaItem{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.MediaItem{}).Where("status = ?", domain.MediaStatusActive).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.MediaItem{}).Where("type = ?", domain.MediaTypeImage).Count(&stats.Images).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.MediaItem{}).Where("type = ?", domain.MediaTypeVideo).Count(&stats.Videos).Error; err != nil {
		return nil, err
	}
	for _, category := range []string{domain.ServiceHome, domain.ServiceWorkplace, domain.ServiceOutdoor} {
		var n int64
		if err := r.db.Model(&models.MediaItem{}).Where("category = ?", category).Count(&n).Error; err != nil {
			return nil, err
		}
		stats.Categories[category] = n
	}
	return stats, nil
}
