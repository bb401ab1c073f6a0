package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	// 256px con corrección media alcanza para escanear el QR impreso en el PDF.
	defaultSize  = 256
	defaultLevel = qrcode.Medium
)

// PNGEncoder implementa ports/qr.Encoder generando un PNG embebido como data URI.
type PNGEncoder struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{size: defaultSize, level: defaultLevel}
}

func (e *PNGEncoder) DataURI(url string) (string, error) {
	png, err := qrcode.Encode(url, e.level, e.size)
	if err != nil {
		return "", fmt.Errorf("qr encode %q: %w", url, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
