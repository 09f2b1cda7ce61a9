package repository

import (
	"lila/internal/domain"
	"lila/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(req *models.ContactRequest) error {
	return r.db.Create(req).Error
}

// List returns contact requests newest first, optionally filtered by
// exact status and/or service. No pagination.
func (r *ContactRepository) List(status, service string) ([]models.ContactRequest, error) {
	q := r.db.Model(&models.ContactRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if service != "" {
		q = q.Where("service = ?", service)
	}
	var list []models.ContactRequest
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ContactRepository) GetByID(id uint) (*models.ContactRequest, error) {
	var req models.ContactRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ContactRepository) Save(req *models.ContactRequest) error {
	return r.db.Save(req).Error
}

func (r *ContactRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactRequest{}, id).Error
}

type ContactStats struct {
	Total     int64            `json:"total"`
	New       int64            `json:"new"`
	Contacted int64            `json:"contacted"`
	Completed int64            `json:"completed"`
	Services  map[string]int64 `json:"services"`
}

// Stats aggregates over the current table state on demand.
func (r *ContactRepository) Stats() (*ContactStats, error) {
	stats := &ContactStats{Services: make(map[string]int64)}
	if err := r.db.Model(&models.ContactRequest{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	byStatus := map[string]*int64{
		domain.ContactStatusNew:       &stats.New,
		domain.ContactStatusContacted: &stats.Contacted,
		domain.ContactStatusCompleted: &stats.Completed,
	}
	for status, dst := range byStatus {
		if err := r.db.Model(&models.ContactRequest{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	for _, service := range domain.Services {
		var n int64
		if err := r.db.Model(&models.ContactRequest{}).Where("service = ?", service).Count(&n).Error; err != nil {
			return nil, err
		}
		stats.Services[service] = n
	}
	return stats, nil
}
