package util

import (
	"encoding/hex"
	"testing"
)

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}
	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("expected hex token, got %q: %v", token, err)
	}
	if len(raw) != resetTokenBytes {
		t.Fatalf("expected %d bytes of entropy, got %d", resetTokenBytes, len(raw))
	}

	other, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}
	if token == other {
		t.Fatalf("expected distinct tokens across calls")
	}
}
