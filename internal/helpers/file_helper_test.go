package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileType(t *testing.T) {
	assert.Equal(t, "png", GetFileType("Photo.PNG"))
	assert.Equal(t, "unknown", GetFileType("README"))
}

func TestDetectContentType_ByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0600))

	contentType, err := DetectContentType(path)

	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDetectContentType_Sniffs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo")
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	require.NoError(t, os.WriteFile(path, png, 0600))

	contentType, err := DetectContentType(path)

	assert.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestDetectContentType_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0600))

	contentType, err := DetectContentType(path)

	assert.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
}

func TestDetectContentType_Missing(t *testing.T) {
	_, err := DetectContentType(filepath.Join(t.TempDir(), "gone"))

	assert.Error(t, err)
}
