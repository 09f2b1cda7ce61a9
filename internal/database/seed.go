package database

import (
	"log"
	"time"

	"lila/config"
	"lila/internal/domain"
	"lila/internal/models"
	"lila/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the admin account from config if no user exists yet.
// The settings row is created lazily on first read instead.
func Seed(db *gorm.DB, admin *config.AdminConfig) error {
	userRepo := repository.NewUserRepository(db)
	count, err := userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &models.User{
		Username:     admin.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(u); err != nil {
		return err
	}
	log.Printf("seeded admin account %q", admin.Username)
	return nil
}

// SeedDemoData fills empty contact and media tables with a few sample
// rows so a development install renders a populated site. Not run in
// production.
func SeedDemoData(db *gorm.DB) error {
	if err := seedContactRequests(db); err != nil {
		return err
	}
	return seedMediaItems(db)
}

func seedContactRequests(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ContactRequest{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	samples := []models.ContactRequest{
		{
			Name:      "Ahmet Yılmaz",
			Email:     "ahmet@email.com",
			Phone:     "+90 532 123 4567",
			Service:   domain.ServiceHome,
			Message:   "Evimde karınca problemi var, yardımcı olabilir misiniz?",
			Status:    domain.ContactStatusNew,
			CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:      "Fatma Demir",
			Email:     "fatma@email.com",
			Phone:     "+90 533 987 6543",
			Service:   domain.ServiceWorkplace,
			Message:   "Restoranımız için düzenli ilaçlama hizmeti istiyoruz.",
			Status:    domain.ContactStatusContacted,
			CreatedAt: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 23, 0, 0, 0, 0, time.UTC),
		},
	}
	return db.Create(&samples).Error
}

func seedMediaItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MediaItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	samples := []models.MediaItem{
		{
			Type:        domain.MediaTypeImage,
			Title:       "Ev İlaçlama Öncesi",
			Category:    domain.ServiceHome,
			Description: "Ev ilaçlama işlemi öncesi durum tespiti",
			Filename:    "sample1.jpg",
			URL:         "/uploads/sample1.jpg",
			Location:    "İstanbul, Kadıköy",
			Date:        "2024-01-15",
			Status:      domain.MediaStatusActive,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:        domain.MediaTypeVideo,
			Title:       "Profesyonel İlaçlama Süreci",
			Category:    domain.ServiceWorkplace,
			Description: "Ofis binası ilaçlama sürecinin videolu anlatımı",
			Filename:    "sample2.mp4",
			URL:         "/uploads/sample2.mp4",
			Location:    "İstanbul, Şişli",
			Date:        "2024-01-20",
			Status:      domain.MediaStatusActive,
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:        domain.MediaTypeImage,
			Title:       "İlaçlama Sonrası Kontrol",
			Category:    domain.ServiceHome,
			Description: "İlaçlama sonrası etkinlik kontrolü",
			Filename:    "sample3.jpg",
			URL:         "/uploads/sample3.jpg",
			Location:    "İstanbul, Beşiktaş",
			Date:        "2024-01-25",
			Status:      domain.MediaStatusActive,
			CreatedAt:   time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
	}
	return db.Create(&samples).Error
}
