package cartera

import "testing"

func TestNormalizeTicker(t *testing.T) {
	tests := []struct{ in, want string }{
		{"aapl", "AAPL"},
		{" ko ", "KO"},
		{"YPFD", "YPFD"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTicker(tt.in); got != tt.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"USD", "ARS", "EUR"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) = %v", code, err)
		}
	}
	if err := ValidateCurrency("XXXX"); err == nil {
		t.Errorf("expected an error for an unknown code")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"2024-01-10", true, "2024-01-10T00:00:00Z"},
		{"2024-01-10T14:30:00Z", true, "2024-01-10T14:30:00Z"},
		{" 2024-01-10 ", true, "2024-01-10T00:00:00Z"},
		{"10/01/2024", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseDate(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok {
			if want := day(t, tt.want); !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, want)
			}
		}
	}
}

func TestParseDecimalInput(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want float64
	}{
		{"150", true, 150},
		{"150.5", true, 150.5},
		{"1,5", true, 1.5},
		{"1.234,56", true, 1234.56},
		{"1,234.56", true, 1234.56},
		{"1.234.567", true, 1234567},
		{"1,234,567", true, 1234567},
		{" 42 ", true, 42},
		{"-3,14", true, -3.14},
		{"", false, 0},
		{"abc", false, 0},
		{"--5", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimalInput(tt.in)
			if tt.ok != (err == nil) {
				t.Fatalf("ParseDecimalInput(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && !got.Equal(newDecimal(tt.want)) {
				t.Errorf("ParseDecimalInput(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
