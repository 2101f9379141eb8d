package deck

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG encodes text as a QR code PNG at size×size pixels.
func QRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// QRImage decodes the QR PNG into an image for sheet composition.
func QRImage(text string, size int) (image.Image, error) {
	b, err := QRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
