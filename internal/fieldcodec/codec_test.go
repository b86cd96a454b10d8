package fieldcodec

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestParseBool checks the Y/N codec is case-insensitive and total.
func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Y", true},
		{"y", true},
		{" Y ", true},
		{"N", false},
		{"n", false},
		{"", false},
		{"x", false},
		{"YES", false},
	}

	for _, tt := range tests {
		if got := ParseBool(tt.input); got != tt.want {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestParseInt checks mandatory integers default to 0 on bad input.
func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"4.5", 0},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.input); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestParseOptionalInt checks absent and present-but-zero stay distinct.
func TestParseOptionalInt(t *testing.T) {
	if got := ParseOptionalInt(""); got != nil {
		t.Errorf("ParseOptionalInt(\"\") = %v, want nil", *got)
	}
	if got := ParseOptionalInt("  "); got != nil {
		t.Errorf("ParseOptionalInt(blank) = %v, want nil", *got)
	}
	if got := ParseOptionalInt("junk"); got != nil {
		t.Errorf("ParseOptionalInt(junk) = %v, want nil", *got)
	}
	if got := ParseOptionalInt("0"); got == nil || *got != 0 {
		t.Errorf("ParseOptionalInt(\"0\") = %v, want 0", got)
	}
	if got := ParseOptionalInt("15"); got == nil || *got != 15 {
		t.Errorf("ParseOptionalInt(\"15\") = %v, want 15", got)
	}
}

// TestParseOptionalString checks blank handling and trimming.
func TestParseOptionalString(t *testing.T) {
	if got := ParseOptionalString(""); got != nil {
		t.Errorf("ParseOptionalString(\"\") = %q, want nil", *got)
	}
	if got := ParseOptionalString("   "); got != nil {
		t.Errorf("ParseOptionalString(whitespace) = %q, want nil", *got)
	}
	if got := ParseOptionalString(" DBL "); got == nil || *got != "DBL" {
		t.Errorf("ParseOptionalString(\" DBL \") = %v, want DBL", got)
	}
}

// TestParseDateRoundTrip checks format(parse(d)) == d for real dates.
func TestParseDateRoundTrip(t *testing.T) {
	valid := []string{
		"20230101",
		"20231231",
		"20240229", // leap day
		"20230228",
		"19991231",
	}

	for _, input := range valid {
		got := ParseDate(input)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want a date", input)
			continue
		}
		if back := FormatDate(*got); back != input {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", input, back)
		}
	}
}

// TestParseDateInvalid checks malformed and impossible dates decode to
// absent. Overflow dates like February 30 must not silently normalize into
// March.
func TestParseDateInvalid(t *testing.T) {
	invalid := []string{
		"20230230", // Feb 30 would normalize to Mar 2
		"20230229", // not a leap year
		"20231301", // month 13
		"20230100", // day 0
		"20230132", // day 32
		"2023131",  // 7 characters
		"202301015",
		"2023010a",
		"",
		"yesterday",
	}

	for _, input := range invalid {
		if got := ParseDate(input); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", input, *got)
		}
	}
}

// TestParseAmount checks both decimal separators and the zero default.
func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12.50", "12.5"},
		{"12,50", "12.5"},
		{"0", "0"},
		{"-5,25", "-5.25"},
		{"100", "100"},
		{"", "0"},
		{"abc", "0"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, want)
		}
	}
}

// TestParseOptionalAmount checks absent vs explicit zero.
func TestParseOptionalAmount(t *testing.T) {
	if got := ParseOptionalAmount(""); got != nil {
		t.Errorf("ParseOptionalAmount(\"\") = %s, want nil", got)
	}
	if got := ParseOptionalAmount("bad"); got != nil {
		t.Errorf("ParseOptionalAmount(bad) = %s, want nil", got)
	}
	if got := ParseOptionalAmount("0"); got == nil || !got.Equal(decimal.Zero) {
		t.Errorf("ParseOptionalAmount(\"0\") = %v, want 0", got)
	}
	if got := ParseOptionalAmount("7,75"); got == nil || got.String() != "7.75" {
		t.Errorf("ParseOptionalAmount(\"7,75\") = %v, want 7.75", got)
	}
}
