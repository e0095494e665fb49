package ticket

import (
	"fmt"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 200
	MinQRSize     = 100
	MaxQRSize     = 1000
)

// QROptions controls the raster. Zero colours fall back to black on white.
type QROptions struct {
	Size       int
	Foreground color.Color
	Background color.Color
}

// CardQROptions is the slate-on-white palette used for on-screen tickets.
func CardQROptions(size int) QROptions {
	return QROptions{
		Size:       size,
		Foreground: color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		Background: color.White,
	}
}

// ClampQRSize keeps a requested pixel size inside the supported range.
func ClampQRSize(size int) int {
	switch {
	case size <= 0:
		return DefaultQRSize
	case size < MinQRSize:
		return MinQRSize
	case size > MaxQRSize:
		return MaxQRSize
	}
	return size
}

// RenderQR encodes content as a PNG QR code with the highest error correction level.
func RenderQR(content string, opts QROptions) ([]byte, error) {
	q, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	if opts.Foreground != nil {
		q.ForegroundColor = opts.Foreground
	}
	if opts.Background != nil {
		q.BackgroundColor = opts.Background
	}

	png, err := q.PNG(ClampQRSize(opts.Size))
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}
