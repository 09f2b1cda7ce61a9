package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"lila/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real *multipart.FileHeader the way gin would
// hand it to a handler.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewStore(dir, 1<<20)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, 1<<20)
	require.NoError(t, err)

	content := []byte("fake image bytes")
	name, err := s.Save(makeFileHeader(t, "photo.PNG", "image/png", content))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^upload-\d+-[0-9a-f]{8}\.png$`), name)

	saved, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestSaveRejectsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, 16)
	require.NoError(t, err)

	cases := []struct {
		name        string
		filename    string
		contentType string
		content     []byte
		wantErr     error
	}{
		{"bad extension", "notes.txt", "text/plain", []byte("x"), ErrUnsupportedType},
		{"bad content type", "photo.png", "application/octet-stream", []byte("x"), ErrUnsupportedType},
		{"too large", "photo.png", "image/png", bytes.Repeat([]byte("x"), 17), ErrFileTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Save(makeFileHeader(t, tc.filename, tc.contentType, tc.content))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not leave files behind")
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, 1<<20)
	require.NoError(t, err)

	name, err := s.Save(makeFileHeader(t, "photo.png", "image/png", []byte("img")))
	require.NoError(t, err)

	s.Remove(name)
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// removing again (or a name that never existed) is fine
	s.Remove(name)
	s.Remove("no-such-file.png")
	s.Remove("")
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, domain.MediaTypeVideo, MediaType("video/mp4"))
	assert.Equal(t, domain.MediaTypeVideo, MediaType("video/quicktime"))
	assert.Equal(t, domain.MediaTypeImage, MediaType("image/png"))
	assert.Equal(t, domain.MediaTypeImage, MediaType(""))
}
