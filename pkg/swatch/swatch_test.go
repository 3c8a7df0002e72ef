package swatch

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	c, err := Parse("#E74C3C")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := c.Hex(); got != "#e74c3c" {
		t.Errorf("Hex() = %q, want #e74c3c", got)
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl(120, 100%, 50%)", "#00ff00"},
		{"hsl(240,100%,50%)", "#0000ff"},
		{"HSL(0, 0%, 100%)", "#ffffff"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "hsl(1, 2)", "hsl(a, b%, c%)", "hsl(10, 150%, 50%)"} {
		if _, err := Parse(in); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) err = %v, want ErrFormat", in, err)
		}
	}
}

func TestHexReturnsInputWhenUnparseable(t *testing.T) {
	if got := Hex("chartreuse-ish"); got != "chartreuse-ish" {
		t.Errorf("Hex() = %q, want input unchanged", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := MustParse("#ff0000")
	b := MustParse("#0000ff")
	if got := Blend(a, b, -1).Hex(); got != "#ff0000" {
		t.Errorf("Blend(t<0) = %s, want a", got)
	}
	if got := Blend(a, b, 2).Hex(); got != "#0000ff" {
		t.Errorf("Blend(t>1) = %s, want b", got)
	}
	mid := Blend(a, b, 0.5).Hex()
	if mid == "#ff0000" || mid == "#0000ff" {
		t.Errorf("Blend(0.5) = %s, want an in-between color", mid)
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#E74C3C", "warm"},
		{"#F39C12", "warm"},
		{"#3498DB", "cool"},
		{"#9B59B6", "cool"},
		{"#7F8C8D", "neutral"},
	}
	for _, tt := range tests {
		if got := Temperature(MustParse(tt.in)); got != tt.want {
			t.Errorf("Temperature(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on bad input")
		}
	}()
	MustParse("nope")
}
