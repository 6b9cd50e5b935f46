package errors

import "testing"

func TestValidateStableID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "R-HSA-1234", false},
		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"traversal dots", "foo/../bar", true},
		{"double slash", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStableID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStableID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStoichiometry(t *testing.T) {
	if err := ValidateStoichiometry(1); err != nil {
		t.Errorf("ValidateStoichiometry(1) = %v, want nil", err)
	}
	if err := ValidateStoichiometry(0); err == nil {
		t.Errorf("ValidateStoichiometry(0) = nil, want error")
	}
	if err := ValidateStoichiometry(-3); err == nil {
		t.Errorf("ValidateStoichiometry(-3) = nil, want error")
	}
}
