package utils

import (
	"bytes"
	"testing"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("LAL-1A2B3C", 256)
	if err != nil {
		t.Fatalf("GenerateQRCode: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	if _, err := GenerateQRCode("", 64); err == nil {
		t.Error("expected an error for empty content")
	}
}
