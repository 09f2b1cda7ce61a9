package handler

import (
	"log"
	"net/http"
	"time"

	"lila/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingsRepository
}

func NewSettingsHandler(repo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.repo.Get()
	if err != nil {
		log.Printf("[settings] get failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Ayarlar alınırken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "", s)
}

type UpdateSettingsRequest struct {
	CompanyName  string `json:"companyName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
	Description  string `json:"description"`
	SocialMedia  *struct {
		Facebook  *string `json:"facebook"`
		Instagram *string `json:"instagram"`
		Twitter   *string `json:"twitter"`
		Linkedin  *string `json:"linkedin"`
	} `json:"socialMedia"`
}

// Update overwrites only the non-empty supplied top-level fields;
// socialMedia sub-fields are merged individually.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}
	s, err := h.repo.Get()
	if err != nil {
		log.Printf("[settings] update lookup failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Ayarlar güncellenirken hata oluştu")
		return
	}
	if req.CompanyName != "" {
		s.CompanyName = req.CompanyName
	}
	if req.Phone != "" {
		s.Phone = req.Phone
	}
	if req.Email != "" {
		s.Email = req.Email
	}
	if req.Address != "" {
		s.Address = req.Address
	}
	if req.WorkingHours != "" {
		s.WorkingHours = req.WorkingHours
	}
	if req.Description != "" {
		s.Description = req.Description
	}
	if req.SocialMedia != nil {
		if req.SocialMedia.Facebook != nil {
			s.SocialMedia.Facebook = *req.SocialMedia.Facebook
		}
		if req.SocialMedia.Instagram != nil {
			s.SocialMedia.Instagram = *req.SocialMedia.Instagram
		}
		if req.SocialMedia.Twitter != nil {
			s.SocialMedia.Twitter = *req.SocialMedia.Twitter
		}
		if req.SocialMedia.Linkedin != nil {
			s.SocialMedia.Linkedin = *req.SocialMedia.Linkedin
		}
	}
	s.UpdatedAt = time.Now()
	if err := h.repo.Save(s); err != nil {
		log.Printf("[settings] update failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Ayarlar güncellenirken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "Ayarlar başarıyla güncellendi", s)
}
