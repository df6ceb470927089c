package errors

import "testing"

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"samples/*.stp", false},
		{"a.stp", false},
		{"data/[ab]*.stp", false},
		{"", true},
		{"   ", true},
		{"data/[*.stp", true},
		{"a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPattern) {
				t.Errorf("ValidatePattern(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"inf", false},
		{"Infinity", false},
		{"", true},
		{"in f", true},
		{"inf\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateToken("inf token", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidOption) {
				t.Errorf("ValidateToken(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	if err := ValidateOneOf("allocator", "counter", "lowest-free", "counter"); err != nil {
		t.Errorf("ValidateOneOf(counter) error = %v", err)
	}
	err := ValidateOneOf("allocator", "random", "lowest-free", "counter")
	if err == nil {
		t.Fatal("ValidateOneOf(random) error = nil, want error")
	}
	if !Is(err, ErrCodeInvalidOption) {
		t.Errorf("ValidateOneOf(random) code = %v, want %v", GetCode(err), ErrCodeInvalidOption)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidOption,
		ErrCodeInvalidPattern,
		ErrCodeFileNotFound,
		ErrCodeIO,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
