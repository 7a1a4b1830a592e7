package user

import (
	"context"
	"testing"

	"github.com/VehicleShare/VehicleShare/internal/common/apperr"
	"github.com/VehicleShare/VehicleShare/internal/common/config"
)

func TestSignUpValidation(t *testing.T) {
	svc := NewService(NewRepo(nil), config.AuthConfig{JWTSecret: "s"})
	ctx := context.Background()

	cases := []struct {
		name string
		in   SignUpInput
	}{
		{"missing email", SignUpInput{Password: "longenough", PasswordConfirm: "longenough", DisplayName: "Taro"}},
		{"bad email", SignUpInput{Email: "nope", Password: "longenough", PasswordConfirm: "longenough", DisplayName: "Taro"}},
		{"short password", SignUpInput{Email: "a@b.jp", Password: "short", PasswordConfirm: "short", DisplayName: "Taro"}},
		{"confirm mismatch", SignUpInput{Email: "a@b.jp", Password: "longenough", PasswordConfirm: "different!", DisplayName: "Taro"}},
		{"missing display name", SignUpInput{Email: "a@b.jp", Password: "longenough", PasswordConfirm: "longenough"}},
	}

	for _, tc := range cases {
		if _, err := svc.SignUp(ctx, tc.in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		} else if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("%s: expected validation kind, got %v", tc.name, apperr.KindOf(err))
		}
	}
}

func TestLoginValidation(t *testing.T) {
	svc := NewService(NewRepo(nil), config.AuthConfig{JWTSecret: "s"})

	if _, err := svc.Login(context.Background(), LoginInput{}); err == nil {
		t.Fatalf("expected validation error for empty credentials")
	} else if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", apperr.KindOf(err))
	}
}
