package qrcodes

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	codeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength     = 8
	payloadPrefix  = "PIYS"
	qrImagePixels  = 256
	dataURIPrefix  = "data:image/png;base64,"
)

// GenerateUniqueCode draws codeLength characters uniformly from the uppercase
// alphanumeric alphabet using crypto/rand.
func GenerateUniqueCode() (string, error) {
	var b strings.Builder
	b.Grow(codeLength)
	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to draw random index: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// ComposePayload builds the scannable binding string
// PIYS:<code>:<spaceID>:<ownerID>.
func ComposePayload(code string, spaceID, ownerID uuid.UUID) string {
	return strings.Join([]string{payloadPrefix, code, spaceID.String(), ownerID.String()}, ":")
}

// ParsePayload inverts ComposePayload.
func ParsePayload(payload string) (code string, spaceID, ownerID uuid.UUID, err error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 4 || parts[0] != payloadPrefix {
		return "", uuid.Nil, uuid.Nil, fmt.Errorf("malformed payload: %q", payload)
	}
	spaceID, err = uuid.Parse(parts[2])
	if err != nil {
		return "", uuid.Nil, uuid.Nil, fmt.Errorf("malformed space id in payload: %w", err)
	}
	ownerID, err = uuid.Parse(parts[3])
	if err != nil {
		return "", uuid.Nil, uuid.Nil, fmt.Errorf("malformed owner id in payload: %w", err)
	}
	return parts[1], spaceID, ownerID, nil
}

// RenderImage encodes the payload as a PNG QR code wrapped in a data URI.
func RenderImage(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImagePixels)
	if err != nil {
		return "", fmt.Errorf("failed to render QR image: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}
