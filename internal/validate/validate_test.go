package validate_test

import (
	"testing"

	"pricecheck/internal/validate"
)

func TestLimitClamp(t *testing.T) {
	cases := map[string]int{
		"":    50,
		"abc": 50,
		"500": 200,
		"0":   1,
		"-3":  1,
		"25":  25,
	}
	for in, want := range cases {
		if got := validate.Limit(in); got != want {
			t.Errorf("Limit(%q): want %d, got %d", in, want, got)
		}
	}
}

func TestOffsetClamp(t *testing.T) {
	cases := map[string]int{
		"":   0,
		"-5": 0,
		"10": 10,
	}
	for in, want := range cases {
		if got := validate.Offset(in); got != want {
			t.Errorf("Offset(%q): want %d, got %d", in, want, got)
		}
	}
}

func TestStatus(t *testing.T) {
	if s, ok := validate.Status(" paid "); !ok || s != "PAID" {
		t.Fatalf("want PAID/true, got %s/%t", s, ok)
	}
	if _, ok := validate.Status("SHIPPED"); ok {
		t.Fatal("SHIPPED must be rejected")
	}
}

func TestBarcode(t *testing.T) {
	if b, ok := validate.Barcode("  4710088412345  "); !ok || b != "4710088412345" {
		t.Fatalf("want trimmed barcode, got %q/%t", b, ok)
	}
	if _, ok := validate.Barcode("   "); ok {
		t.Fatal("blank barcode must be rejected")
	}
}
