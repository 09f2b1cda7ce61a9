package router_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"lila/config"
	"lila/internal/database"
	"lila/internal/router"
	"lila/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	Engine    *gin.Engine
	DB        *gorm.DB
	Cfg       *config.Config
	UploadDir string
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Total   *int            `json:"total"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
}

// newTestEnv wires the full engine against a throwaway sqlite database
// and upload directory, seeded with the default admin account.
func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvMaxUpload(t, 50<<20)
}

func newTestEnvMaxUpload(t *testing.T, maxUpload int64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "test"},
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: 24 * time.Hour,
			Issuer: "lilailaclama",
		},
		Upload: config.UploadConfig{MaxSize: maxUpload},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Admin:  config.AdminConfig{Username: "admin", Password: "123456"},
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db, &cfg.Admin))

	uploadDir := t.TempDir()
	cfg.Upload.Dir = uploadDir
	store, err := storage.NewStore(uploadDir, cfg.Upload.MaxSize)
	require.NoError(t, err)

	return &testEnv{
		Engine:    router.Setup(cfg, db, store),
		DB:        db,
		Cfg:       cfg,
		UploadDir: uploadDir,
	}
}

// sendJSON performs a request with an optional JSON body and bearer
// token, returning the status code and decoded envelope.
func (e *testEnv) sendJSON(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w.Code, env
}

// sendUpload posts a multipart media upload with the given form fields
// and a single file part.
func (e *testEnv) sendUpload(t *testing.T, token string, fields map[string]string, filename, contentType string, content []byte) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w.Code, env
}

// login authenticates as the seeded admin and returns the token.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	status, env := e.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)
	return env.Token
}
