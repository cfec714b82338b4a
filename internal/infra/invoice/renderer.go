// Package invoice renders exported invoice/template documents as PDFs.
package invoice

import (
	"bytes"
	"fmt"
	"net/http"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	pageWidth  = 210.0 // A4 portrait, mm
	pageHeight = 297.0
	margin     = 10.0
	qrSize     = 25.0

	defaultQRPixels = 256
)

type renderer struct {
	qrPixels int
	qrLevel  qrcode.RecoveryLevel
}

// NewRenderer creates a PDF invoice renderer.
func NewRenderer(cfg *config.Config) service.InvoiceRenderer {
	r := &renderer{
		qrPixels: defaultQRPixels,
		qrLevel:  qrcode.Medium,
	}
	if cfg.QRCode == nil {
		return r
	}

	if cfg.QRCode.Size > 0 {
		r.qrPixels = cfg.QRCode.Size
	}
	switch cfg.QRCode.ErrorCorrectionLevel {
	case "L":
		r.qrLevel = qrcode.Low
	case "M":
		r.qrLevel = qrcode.Medium
	case "Q":
		r.qrLevel = qrcode.High
	case "H":
		r.qrLevel = qrcode.Highest
	}

	return r
}

// Render lays out one fetched image per A4 page and stamps an order QR code
// on the first page.
func (r *renderer) Render(doc *service.InvoiceDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, img := range doc.Images {
		imageType, err := detectImageType(img)
		if err != nil {
			return nil, errors.Wrapf(err, "page %d", i+1)
		}

		name := fmt.Sprintf("page-%d", i+1)
		options := fpdf.ImageOptions{ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(img))

		pdf.AddPage()
		pdf.ImageOptions(name, margin, margin, pageWidth-2*margin, 0, false, options, 0, "")
	}

	if len(doc.Images) == 0 {
		pdf.AddPage()
	}

	if err := r.stampOrderQR(pdf, doc.OrderID); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	return buf.Bytes(), nil
}

// stampOrderQR places an order reference QR in the bottom-right corner of
// the first page.
func (r *renderer) stampOrderQR(pdf *fpdf.Fpdf, orderID string) error {
	png, err := qrcode.Encode(orderID, r.qrLevel, r.qrPixels)
	if err != nil {
		return errors.Wrap(err, "encode order qr")
	}

	options := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", options, bytes.NewReader(png))

	pdf.SetPage(1)
	pdf.ImageOptions("order-qr", pageWidth-margin-qrSize, pageHeight-margin-qrSize, qrSize, qrSize, false, options, 0, "")

	return nil
}

func detectImageType(data []byte) (string, error) {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", errors.New("unsupported image format")
	}
}
