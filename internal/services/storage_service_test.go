// internal/services/storage_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/variant-catalog/internal/catalog"
)

func TestGenerateKey(t *testing.T) {
	storage, err := NewStorageService(testConfig(t.TempDir()))
	require.NoError(t, err)
	storage.now = func() time.Time { return time.UnixMilli(42) }

	assert.Equal(t, "product-images/42-my_red_hoodie.png", storage.generateKey("my red \t hoodie.png", FolderProductImages))
	assert.Equal(t, "42-plain.jpg", storage.generateKey("plain.jpg", ""))
	assert.Equal(t, "general/42-evil.png", storage.generateKey("../../evil.png", FolderGeneral))
}

func TestValidateImage(t *testing.T) {
	storage, err := NewStorageService(testConfig(t.TempDir()))
	require.NoError(t, err)

	mime, err := storage.ValidateImage(pngHeader, allowedImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	mime, err = storage.ValidateImage([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), allowedImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	_, err = storage.ValidateImage([]byte("%PDF-1.4"), allowedImageTypes)
	assert.ErrorIs(t, err, catalog.ErrValidationInput)
}

func TestLocalUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorageService(testConfig(dir))
	require.NoError(t, err)

	result, err := storage.UploadHeader(fileHeader(t, "x.png", pngHeader), storage.GetDefaultUploadOptions(FolderGeneral))
	require.NoError(t, err)
	assert.Equal(t, int64(len(pngHeader)), result.Size)

	target := filepath.Join(dir, filepath.FromSlash(result.Key))
	_, err = os.Stat(target)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(result.Key))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is not an error.
	assert.NoError(t, storage.DeleteFile(result.Key))
}

func TestGetS3URL(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.AWS.S3Bucket = "catalog"
	cfg.AWS.Region = "eu-west-1"
	storage := &StorageService{config: cfg, now: time.Now}

	assert.Equal(t, "https://catalog.s3.eu-west-1.amazonaws.com/general/a.png", storage.getS3URL("general/a.png"))

	cfg.AWS.CloudFrontURL = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/general/a.png", storage.getS3URL("general/a.png"))
}
