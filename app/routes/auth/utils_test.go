package auth

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("testpass1234!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "testpass1234!" {
		t.Fatal("password was not hashed")
	}
	if !CheckPasswordHash("testpass1234!", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "test@test.com", "Kate Donaldson", "Kate")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Email != "test@test.com" {
		t.Errorf("Email = %s, want test@test.com", claims.Email)
	}
	if claims.GreetingName != "Kate" {
		t.Errorf("GreetingName = %s, want Kate", claims.GreetingName)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
