package password

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantError error
	}{
		{
			name:     "valid password",
			password: "SecureP@ssw0rd123!",
		},
		{
			name:      "too short",
			password:  "Ab1!x",
			wantError: ErrTooShort,
		},
		{
			name:      "no uppercase",
			password:  "securep@ssw0rd123!",
			wantError: ErrNoUppercase,
		},
		{
			name:      "no lowercase",
			password:  "SECUREP@SSW0RD123!",
			wantError: ErrNoLowercase,
		},
		{
			name:      "no digit",
			password:  "SecureP@ssword!",
			wantError: ErrNoDigit,
		},
		{
			name:      "no special character",
			password:  "SecurePassw0rd123",
			wantError: ErrNoSpecial,
		},
		{
			name:      "low entropy",
			password:  "Aaaaaaaa1!",
			wantError: ErrTooWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantError == nil {
				if err != nil {
					t.Fatalf("ValidatePassword(%q) error = %v", tt.password, err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ValidatePassword(%q) error = %v, want %v", tt.password, err, tt.wantError)
			}
		})
	}
}
