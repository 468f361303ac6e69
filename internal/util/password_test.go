package util

import "testing"

func TestDeriveAndVerifyPassword(t *testing.T) {
	hash, salt, err := DerivePassword("s3cret-pass")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	if len(hash) == 0 || len(salt) == 0 {
		t.Fatalf("expected hash and salt to be populated")
	}
	if !VerifyPassword("s3cret-pass", salt, hash) {
		t.Fatalf("expected password verification to succeed")
	}
	if VerifyPassword("wrong-pass", salt, hash) {
		t.Fatalf("expected password verification to fail for wrong password")
	}
}

func TestDerivePasswordUniqueSalt(t *testing.T) {
	_, saltA, err := DerivePassword("NewPass1!")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	_, saltB, err := DerivePassword("NewPass1!")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	if string(saltA) == string(saltB) {
		t.Fatalf("expected distinct salts for repeated derivations")
	}
}

func TestHashPasswordEmptyInput(t *testing.T) {
	if _, err := HashPassword("", []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error when password empty")
	}
	if _, err := HashPassword("secret", nil); err == nil {
		t.Fatalf("expected error when salt empty")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"accepts letters and digits", "NewPass1!", false},
		{"accepts minimum length", "abcdefg1", false},
		{"rejects short", "Ab1", true},
		{"rejects digits only", "12345678", true},
		{"rejects letters only", "abcdefgh", true},
		{"rejects empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.password)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.password, err)
			}
		})
	}
}
