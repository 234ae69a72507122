package cmd

import (
	"errors"
	"testing"

	"github.com/obarbosa/bancore"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input string
		want  bancore.Money
		err   bool
	}{
		{"100", bancore.BRL(100), false},
		{"99.90", bancore.BRL(99.90), false},
		{"-5", bancore.BRL(-5), false}, // sign checks belong to the operations
		{"", bancore.Money{}, true},
		{"ten", bancore.Money{}, true},
		{"1,5", bancore.Money{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMoney(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("parseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err {
				if !errors.Is(err, bancore.ErrInvalidAmount) {
					t.Errorf("got %v, want ErrInvalidAmount", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseMoney(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	got, err := parseQuantity("10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(bancore.Q(10)) {
		t.Errorf("parseQuantity(\"10\") = %s, want 10", got)
	}

	if _, err := parseQuantity("many"); !errors.Is(err, bancore.ErrInvalidAmount) {
		t.Errorf("got %v, want ErrInvalidAmount", err)
	}
}
