package logx

import (
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		f    float64
		prec int
		want string
	}{
		{23.456, 1, "23.5"},
		{23.44, 1, "23.4"},
		{-2.35, 1, "-2.4"},
		{0, 1, "0.0"},
		{0, 0, "0"},
		{55.125, 2, "55.13"},
		{1013.04, 1, "1013.0"},
		{9.999, 2, "10.00"},
		{0.05, 2, "0.05"},
		{math.NaN(), 1, "NaN"},
		{math.Inf(1), 1, "NaN"},
	}
	for _, c := range cases {
		if got := FormatFixed(c.f, c.prec); got != c.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", c.f, c.prec, got, c.want)
		}
	}
}

func TestMiniSprintf(t *testing.T) {
	got := miniSprintf("reading %d: %.1f C, valid=%t (%s)", 3, 21.27, true, "bme280")
	want := "reading 3: 21.3 C, valid=true (bme280)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if got := miniSprintf("addr 0x%x", uint16(0x76)); got != "addr 0x76" {
		t.Fatalf("hex: got %q", got)
	}
	if got := miniSprintf("100%% done, %q", "file.csv"); got != `100% done, "file.csv"` {
		t.Fatalf("quote: got %q", got)
	}
	if got := miniSprintf("neg %d", -42); got != "neg -42" {
		t.Fatalf("neg: got %q", got)
	}
}
