package auth

import (
	"testing"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/config"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "vehicleshare",
		Audience:  "vehicleshare",
	}

	token, exp, err := GenerateAccessToken(cfg, "u-1", "Taro", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expected exp in future")
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("subject mismatch: %s", claims.Subject)
	}
	if claims.DisplayName != "Taro" {
		t.Fatalf("display_name mismatch: %s", claims.DisplayName)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret-a", Issuer: "vehicleshare"}
	token, _, err := GenerateAccessToken(cfg, "u-1", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := config.AuthConfig{JWTSecret: "secret-b", Issuer: "vehicleshare"}
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret", Issuer: "someone-else"}
	token, _, err := GenerateAccessToken(cfg, "u-1", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	verify := config.AuthConfig{JWTSecret: "secret", Issuer: "vehicleshare"}
	if _, err := ParseAccessToken(verify, token); err == nil {
		t.Fatalf("expected issuer mismatch to fail")
	}
}
