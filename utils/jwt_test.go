package utils

import (
	"testing"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret-test-secret-test-secret")

	token, err := GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	InitJWT("test-secret-test-secret-test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"tampered", func() string {
			token, _ := GenerateToken("user-1", "alice")
			return token + "x"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token); err == nil {
				t.Error("ParseToken accepted an invalid token")
			}
		})
	}
}

func TestParseToken_WrongKey(t *testing.T) {
	InitJWT("first-secret-first-secret-first!")
	token, err := GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("other-secret-other-secret-other!")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with a different key was accepted")
	}
}
