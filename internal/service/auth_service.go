package service

import (
	"errors"
	"strings"
	"time"

	"lila/config"
	"lila/internal/auth"
	"lila/internal/models"
	"lila/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingCredentials = errors.New("kullanıcı adı ve şifre gereklidir")
	ErrInvalidCreds       = errors.New("geçersiz kullanıcı adı veya şifre")
	ErrMissingPasswords   = errors.New("mevcut şifre ve yeni şifre gereklidir")
	ErrPasswordTooShort   = errors.New("yeni şifre en az 6 karakter olmalıdır")
	ErrWrongPassword      = errors.New("mevcut şifre hatalı")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository

	// now is the token issue clock, overridable in tests.
	now func() time.Time
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, now: time.Now}
}

// Login checks the credentials and issues a bearer token. Unknown
// username and wrong password return the same generic error.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateTokenAt(&s.cfg.JWT, u.ID, u.Username, u.Role, s.now())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Verify validates a bearer token and returns its claims. Stateless:
// the credential store is not consulted.
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return auth.ParseToken(&s.cfg.JWT, token)
}

// ChangePassword verifies the current password, rehashes the new one
// and persists it. Tokens already issued stay valid until expiry.
func (s *AuthService) ChangePassword(userID uint, current, newPassword string) error {
	if current == "" || newPassword == "" {
		return ErrMissingPasswords
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.userRepo.Save(u)
}

// SetClock overrides the token issue clock. Test hook.
func (s *AuthService) SetClock(now func() time.Time) { s.now = now }
