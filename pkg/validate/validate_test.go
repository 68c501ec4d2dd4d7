package validate_test

import (
	"testing"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/validate"
)

type signupInput struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=customer seller admin"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Email:    "thandi@example.co.za",
		Password: "secret123",
		FullName: "Thandi Mokoena",
		Role:     "customer",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["full_name"]; !ok {
		t.Error("expected full_name to be required")
	}
}

func TestErrorsKeyedByJSONName(t *testing.T) {
	errs := validate.Struct(signupInput{Email: "not-an-email", Password: "secret123", FullName: "Thandi"})
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected error under json name 'email', got: %v", errs)
	}
	if _, ok := errs["Email"]; ok {
		t.Error("errors must not be keyed by Go field name")
	}
}

func TestOneofRule(t *testing.T) {
	in := signupInput{Email: "t@example.com", Password: "secret123", FullName: "Thandi", Role: "superuser"}
	if errs := validate.Struct(in); !validate.HasErrors(errs) {
		t.Error("expected invalid role to fail")
	}
	in.Role = "seller"
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected seller role to pass, got: %v", errs)
	}
}
