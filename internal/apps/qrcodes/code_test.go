package qrcodes

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUniqueCode(t *testing.T) {
	code, err := GenerateUniqueCode()
	if err != nil {
		t.Fatalf("GenerateUniqueCode: %v", err)
	}
	if len(code) != codeLength {
		t.Fatalf("expected %d characters, got %d", codeLength, len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	spaceID := uuid.New()
	ownerID := uuid.New()

	payload := ComposePayload("AB12CD34", spaceID, ownerID)
	if !strings.HasPrefix(payload, "PIYS:AB12CD34:") {
		t.Fatalf("unexpected payload: %s", payload)
	}

	code, gotSpace, gotOwner, err := ParsePayload(payload)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if code != "AB12CD34" {
		t.Fatalf("code mismatch: %s", code)
	}
	if gotSpace != spaceID {
		t.Fatalf("space id mismatch: %s", gotSpace)
	}
	if gotOwner != ownerID {
		t.Fatalf("owner id mismatch: %s", gotOwner)
	}
}

func TestParsePayloadRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"PIYS",
		"PIYS:ONLYCODE",
		"OTHER:AB12CD34:" + uuid.NewString() + ":" + uuid.NewString(),
		"PIYS:AB12CD34:not-a-uuid:" + uuid.NewString(),
		"PIYS:AB12CD34:" + uuid.NewString() + ":not-a-uuid",
	}
	for _, payload := range bad {
		if _, _, _, err := ParsePayload(payload); err == nil {
			t.Fatalf("expected %q to be rejected", payload)
		}
	}
}

func TestRenderImage(t *testing.T) {
	payload := ComposePayload("AB12CD34", uuid.New(), uuid.New())

	image, err := RenderImage(payload)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if !strings.HasPrefix(image, dataURIPrefix) {
		t.Fatalf("expected data URI, got %.40s", image)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(image, dataURIPrefix))
	if err != nil {
		t.Fatalf("decode image: %v", err)
	}
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Fatalf("expected PNG bytes")
	}
}
