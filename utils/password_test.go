package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "password123"},
		{"symbols", "P@ssw0rd!#$%"},
		{"unicode", "пароль密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword: %v", err)
			}
			if hash == tt.password {
				t.Error("hash equals the plaintext")
			}
			if !CheckPassword(tt.password, hash) {
				t.Error("correct password rejected")
			}
			if CheckPassword(tt.password+"x", hash) {
				t.Error("wrong password accepted")
			}
		})
	}
}

func TestValidID(t *testing.T) {
	if !ValidID(GenerateID()) {
		t.Error("generated id does not validate")
	}
	for _, bad := range []string{"", "123", "not-a-uuid", "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"} {
		if ValidID(bad) {
			t.Errorf("ValidID(%q) = true", bad)
		}
	}
}
