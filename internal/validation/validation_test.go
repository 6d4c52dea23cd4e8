package validation

import (
	"testing"
)

func TestValidateDifficulty(t *testing.T) {
	type input struct {
		Difficulty string `validate:"difficulty"`
	}

	tests := []struct {
		name       string
		difficulty string
		wantErr    bool
	}{
		{"easy is valid", "easy", false},
		{"medium is valid", "medium", false},
		{"hard is valid", "hard", false},
		{"empty is invalid", "", true},
		{"unknown level is invalid", "extreme", true},
		{"case sensitive", "Easy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&input{Difficulty: tt.difficulty})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReviewStatus(t *testing.T) {
	type input struct {
		Status string `validate:"reviewstatus"`
	}

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{"approved is valid", "approved", false},
		{"rejected is valid", "rejected", false},
		{"pending is not a review target", "pending", true},
		{"empty is invalid", "", true},
		{"unknown status is invalid", "done", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&input{Status: tt.status})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "password1", false},
		{"too short", "pass1", true},
		{"letters only", "passwordonly", true},
		{"numbers only", "12345678", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	type input struct {
		Slug string `validate:"slug"`
	}

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"simple slug", "intro-to-go", false},
		{"trailing hyphen allowed", "intro-to-go-", false},
		{"numbers allowed", "go-101", false},
		{"uppercase rejected", "Intro-To-Go", true},
		{"spaces rejected", "intro to go", true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&input{Slug: tt.slug})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	type input struct {
		Email  string `validate:"required,email"`
		Status string `validate:"reviewstatus"`
	}

	err := Validate(&input{Email: "not-an-email", Status: "pending"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := FormatError(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d", len(errs))
	}
	if errs[0].Field != "email" {
		t.Errorf("expected first error field to be email, got %s", errs[0].Field)
	}
}
