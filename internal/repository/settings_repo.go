package repository

import (
	"errors"
	"time"

	"lila/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with company
// defaults on first access.
func (r *SettingsRepository) Get() (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = defaultSettings()
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *models.SiteSettings) error {
	return r.db.Save(s).Error
}

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		CompanyName:  "Lila İlaçlama",
		Phone:        "+90 (212) 555 0123",
		Email:        "info@lilailacla.com",
		Address:      "Atatürk Mahallesi, İlaçlama Sokak No:15, Kadıköy / İstanbul",
		WorkingHours: "Pazartesi - Cumartesi: 08:00 - 18:00\nPazar: Acil durumlar için 24/7",
		Description:  "Profesyonel ilaçlama hizmetleri ile sağlıklı yaşam alanları",
		UpdatedAt:    time.Now(),
	}
}
