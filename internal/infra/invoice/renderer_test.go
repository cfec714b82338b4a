package invoice

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestRenderProducesPDF(t *testing.T) {
	t.Parallel()

	page := encodePNG(t)
	renderer := NewRenderer(&config.Config{})

	data, err := renderer.Render(&service.InvoiceDocument{
		OrderID: "order-1",
		Images:  [][]byte{page, page},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderWithoutImagesStillEmitsDocument(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(&config.Config{})

	data, err := renderer.Render(&service.InvoiceDocument{OrderID: "order-2"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderRejectsUnknownImageFormat(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(&config.Config{})

	_, err := renderer.Render(&service.InvoiceDocument{
		OrderID: "order-3",
		Images:  [][]byte{[]byte("not an image")},
	})
	assert.Error(t, err)
}

func TestRenderHonorsQRCodeConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{Size: 64, ErrorCorrectionLevel: "H"},
	}

	data, err := NewRenderer(cfg).Render(&service.InvoiceDocument{OrderID: "order-4"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
