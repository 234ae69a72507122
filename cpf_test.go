package bancore

import "testing"

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"111.444.777-35", "11144477735"},
		{"11144477735", "11144477735"},
		{" 111 444 777 35 ", "11144477735"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeCPF(tt.input); got != tt.want {
				t.Errorf("NormalizeCPF(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"111.444.777-35", true}, // punctuation is stripped before validation
		{"11144477735", true},
		{"123.456.789-09", true},
		{"12345678909", true},

		{"11144477734", false}, // wrong second check digit
		{"11144477725", false}, // wrong first check digit
		{"11111111111", false}, // repeated digit passes mod-11 but is rejected
		{"00000000000", false},
		{"1114447773", false},   // too short
		{"111444777350", false}, // too long
		{"", false},
		{"not-a-cpf", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidCPF(tt.input); got != tt.want {
				t.Errorf("ValidCPF(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
