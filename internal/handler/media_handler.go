package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"lila/internal/domain"
	"lila/internal/models"
	"lila/internal/repository"
	"lila/pkg/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MediaHandler struct {
	repo  *repository.MediaRepository
	store *storage.Store
}

func NewMediaHandler(repo *repository.MediaRepository, store *storage.Store) *MediaHandler {
	return &MediaHandler{repo: repo, store: store}
}

func (h *MediaHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Query("category"), c.Query("type"), c.Query("status"))
	if err != nil {
		log.Printf("[media] list failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Medya öğeleri alınırken hata oluştu")
		return
	}
	respondList(c, list, len(list))
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Medya öğesi bulunamadı")
			return
		}
		log.Printf("[media] get failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "Medya öğesi alınırken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "", item)
}

// Create handles the authenticated multipart upload. The file is
// written first; the metadata row is only created after the write
// succeeds, so no record ever points at a missing file.
func (h *MediaHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	category := c.PostForm("category")
	if title == "" || category == "" {
		respondError(c, http.StatusBadRequest, "Başlık ve kategori gereklidir")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Dosya yüklenmesi gereklidir")
		return
	}
	filename, err := h.store.Save(fh)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, "Dosya boyutu 50MB sınırını aşıyor")
		case errors.Is(err, storage.ErrUnsupportedType):
			respondError(c, http.StatusBadRequest, "Sadece resim ve video dosyaları yüklenebilir")
		default:
			log.Printf("[media] file save failed: %v", err)
			respondError(c, http.StatusInternalServerError, "Medya yüklenirken hata oluştu")
		}
		return
	}

	item := &models.MediaItem{
		Type:        storage.MediaType(fh.Header.Get("Content-Type")),
		Title:       title,
		Category:    category,
		Description: c.PostForm("description"),
		Filename:    filename,
		URL:         "/uploads/" + filename,
		Location:    c.PostForm("location"),
		Date:        time.Now().Format("2006-01-02"),
		Status:      domain.MediaStatusActive,
	}
	if err := h.repo.Create(item); err != nil {
		h.store.Remove(filename)
		log.Printf("[media] create failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Medya yüklenirken hata oluştu")
		return
	}
	respond(c, http.StatusCreated, "Medya başarıyla yüklendi", item)
}

type UpdateMediaRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Status      string  `json:"status"`
}

// Update is metadata-only; the file and filename never change after
// creation.
func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Medya öğesi bulunamadı")
			return
		}
		log.Printf("[media] update lookup failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "Medya güncellenirken hata oluştu")
		return
	}
	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Status != "" {
		item.Status = req.Status
	}
	if err := h.repo.Save(item); err != nil {
		log.Printf("[media] update failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "Medya güncellenirken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "Medya başarıyla güncellendi", item)
}

// Delete removes the record and best-effort deletes the backing file.
// A file already missing from disk does not block the delete.
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Medya öğesi bulunamadı")
			return
		}
		log.Printf("[media] delete lookup failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "Medya silinirken hata oluştu")
		return
	}
	if err := h.repo.Delete(id); err != nil {
		log.Printf("[media] delete failed: id=%d err=%v", id, err)
		respondError(c, http.StatusInternalServerError, "Medya silinirken hata oluştu")
		return
	}
	h.store.Remove(item.Filename)
	respond(c, http.StatusOK, "Medya başarıyla silindi", nil)
}

func (h *MediaHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats()
	if err != nil {
		log.Printf("[media] stats failed: %v", err)
		respondError(c, http.StatusInternalServerError, "İstatistikler alınırken hata oluştu")
		return
	}
	respond(c, http.StatusOK, "", stats)
}
