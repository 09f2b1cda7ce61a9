package handler

import (
	"log"
	"net/http"

	"lila/internal/middleware"
	"lila/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrMissingCredentials.Error())
		return
	}
	u, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		switch err {
		case service.ErrMissingCredentials:
			respondError(c, http.StatusBadRequest, err.Error())
		case service.ErrInvalidCreds:
			respondError(c, http.StatusUnauthorized, err.Error())
		default:
			log.Printf("[auth] login failed: username=%s err=%v", req.Username, err)
			respondError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Giriş başarılı",
		"token":   token,
		"user":    userView{ID: u.ID, Username: u.Username, Role: u.Role},
	})
}

// Verify echoes the identity from the already verified token. Runs
// behind AuthRequired, so reaching here means the token is good.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Geçersiz token")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userView{ID: claims.UserID, Username: claims.Username, Role: claims.Role},
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrMissingPasswords.Error())
		return
	}
	err := h.svc.ChangePassword(middleware.GetUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch err {
		case service.ErrMissingPasswords, service.ErrPasswordTooShort:
			respondError(c, http.StatusBadRequest, err.Error())
		case service.ErrWrongPassword:
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[auth] change password failed: user=%d err=%v", middleware.GetUserID(c), err)
			respondError(c, http.StatusInternalServerError, "Şifre değiştirilirken hata oluştu")
		}
		return
	}
	respond(c, http.StatusOK, "Şifre başarıyla değiştirildi", nil)
}
