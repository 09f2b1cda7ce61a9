package handler

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"lila/internal/domain"
	"lila/internal/models"
	"lila/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactHandler struct {
	repo *repository.ContactRepository
}

func NewContactHandler(repo *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Submit handles the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Ad, email, telefon ve mesaj alanları gereklidir")
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || phone == "" || message == "" {
		respondError(c, http.StatusBadRequest, "Ad, email, telefon ve mesaj alanları gereklidir")
		return
	}
	if !emailPattern.MatchString(email) {
		respondError(c, http.StatusBadRequest, "Geçerli bir email adresi giriniz")
		return
	}
	service := req.Service
	if !domain.ValidService(service) {
		service = domain.ServiceGeneral
	}

	record := &models.ContactRequest{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Service: service,
		Message: message,
		Status:  domain.ContactStatusNew,
	}
	if err := h.repo.Create(record); err != nil {
		log.Printf("[contact] create failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Mesaj gönderilirken hata oluştu")
		return
	}
	respond(c, http.StatusCreated, "Mesajınız başarıyla gönderildi. En kısa sürede size dönüş yapacağız.", gin.H{
		"id":    record.ID,
		"name":  record.Name,
		"email": record.Email,
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Query("status"), c.Query("service"))
	if err != nil {
		log.Printf("[contact] list failed: %v", err)
		respondError(c, http.StatusInternalServerError, "İletişim talepleri alınırken hata oluştu")
		return
	}
	respondList(c, list, len(list))
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "İletişim talebi bulunamadı")
			return
		}
		log.Printf("[contact] get failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "İletişim talebi alınırken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "", record)
}

type UpdateContactRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// Update applies a partial status/notes update and refreshes updatedAt.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}
	record, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "İletişim talebi bulunamadı")
			return
		}
		log.Printf("[contact] update lookup failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "İletişim talebi güncellenirken hata oluştu")
		return
	}
	if req.Status != "" {
		record.Status = req.Status
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if err := h.repo.Save(record); err != nil {
		log.Printf("[contact] update failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "İletişim talebi güncellenirken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "İletişim talebi başarıyla güncellendi", record)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "İletişim talebi bulunamadı")
			return
		}
		log.Printf("[contact] delete lookup failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "İletişim talebi silinirken hata oluştu")
		return
	}
	if err := h.repo.Delete(id); err != nil {
		log.Printf("[contact] delete failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "İletişim talebi silinirken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "İletişim talebi başarıyla silindi", nil)
}

func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats()
	if err != nil {
		log.Printf("[contact] stats failed: %v", err)
		respondError(c, http.StatusInternalServerError, "İstatistikler alınırken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "", stats)
}

// parseID reads the :id route param; responds 404 on garbage, matching
// the unknown-id behavior.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusNotFound, "Kayıt bulunamadı")
		return 0, false
	}
	return uint(id), true
}
