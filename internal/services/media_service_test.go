// internal/services/media_service_test.go
package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epocha/admin-backend/internal/config"
)

func newTestMediaService(t *testing.T) *MediaService {
	t.Helper()
	svc, err := NewMediaService(&config.StorageConfig{
		BaseURL:    "http://localhost:8000",
		StaticRoot: t.TempDir(),
	})
	require.NoError(t, err)
	return svc
}

func encodeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSaveImageWritesPNG(t *testing.T) {
	svc := newTestMediaService(t)

	rel, err := svc.SaveImage(encodeTestPNG(t), "10_0_product.png")
	require.NoError(t, err)
	assert.Equal(t, "static/img/10_0_product.png", rel)

	written := filepath.Join(svc.storage.StaticRoot, "img", "10_0_product.png")
	data, err := os.ReadFile(written)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err, "stored file must be a decodable PNG")
}

func TestSaveImageRepairsMissingPadding(t *testing.T) {
	svc := newTestMediaService(t)

	stripped := strings.TrimRight(encodeTestPNG(t), "=")
	_, err := svc.SaveImage(stripped, "padded.png")
	assert.NoError(t, err)
}

func TestSaveImageRejectsInvalidBase64(t *testing.T) {
	svc := newTestMediaService(t)

	_, err := svc.SaveImage("not;;base64!!", "bad.png")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestSaveImageRejectsNonImagePayload(t *testing.T) {
	svc := newTestMediaService(t)

	payload := base64.StdEncoding.EncodeToString([]byte("just some text"))
	_, err := svc.SaveImage(payload, "bad.png")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestResolveURL(t *testing.T) {
	svc, err := NewMediaService(&config.StorageConfig{BaseURL: "http://localhost:8000/"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/static/img/a.png", svc.ResolveURL("static/img/a.png"))
}

func TestPadBase64(t *testing.T) {
	assert.Equal(t, "abcd", padBase64("abcd"))
	assert.Equal(t, "abc=", padBase64("abc"))
	assert.Equal(t, "ab==", padBase64("ab"))
}
