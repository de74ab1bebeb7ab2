package validation

import (
	"testing"
	"time"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{
			name:  "plain amount",
			input: "19.99",
			want:  "19.99",
			valid: true,
		},
		{
			name:  "whitespace trimmed",
			input: "  10.00 ",
			want:  "10.00",
			valid: true,
		},
		{
			name:  "zero",
			input: "0",
			want:  "0",
			valid: true,
		},
		{
			name:  "negative rejected",
			input: "-5.00",
			valid: false,
		},
		{
			name:  "not a number",
			input: "ten",
			valid: false,
		},
		{
			name:  "empty",
			input: "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseMoney(%q) error: %v", tt.input, err)
				}
				if got.String() != tt.want {
					t.Fatalf("ParseMoney(%q) = %s, want %s", tt.input, got, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseMoney(%q) expected error", tt.input)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	if _, err := ParseQuantity("3"); err != nil {
		t.Fatalf("ParseQuantity(3) error: %v", err)
	}
	if _, err := ParseQuantity("0"); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, err := ParseQuantity("-2"); err == nil {
		t.Fatalf("expected error for negative quantity")
	}
	if _, err := ParseQuantity("2.5"); err == nil {
		t.Fatalf("expected error for fractional quantity")
	}
}

func TestParseDelta(t *testing.T) {
	n, err := ParseDelta("-7")
	if err != nil {
		t.Fatalf("ParseDelta(-7) error: %v", err)
	}
	if n != -7 {
		t.Fatalf("ParseDelta(-7) = %d, want -7", n)
	}
	if _, err := ParseDelta("many"); err == nil {
		t.Fatalf("expected error for non-numeric delta")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-11-10")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.November || d.Day() != 10 {
		t.Fatalf("ParseDate = %v, want 2024-11-10", d)
	}
	if _, err := ParseDate("10/11/2024"); err == nil {
		t.Fatalf("expected error for wrong date format")
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("12")
	if err != nil {
		t.Fatalf("ParseMonth error: %v", err)
	}
	if m != time.December {
		t.Fatalf("ParseMonth(12) = %v, want December", m)
	}
	if _, err := ParseMonth("13"); err == nil {
		t.Fatalf("expected error for month out of range")
	}
	if _, err := ParseMonth("0"); err == nil {
		t.Fatalf("expected error for month zero")
	}
}
