package utils

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100000, "1000.00"},
		{233000, "2330.00"},
		{-1550, "-15.50"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.cents); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}

	if got := FormatAmount(20000, "USD"); got != "200.00 USD" {
		t.Errorf("FormatAmount = %q", got)
	}
	if got := FormatAmount(20000, ""); got != "200.00" {
		t.Errorf("FormatAmount without currency = %q", got)
	}
}

func TestParseMoneyRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 5, 99, 100, 233000, -1550} {
		got, err := ParseMoney(FormatMoney(cents))
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", FormatMoney(cents), err)
		}
		if got != cents {
			t.Errorf("round trip %d -> %d", cents, got)
		}
	}

	if _, err := ParseMoney("12.345"); err == nil {
		t.Error("expected error for three decimals")
	}
	if _, err := ParseMoney(""); err == nil {
		t.Error("expected error for empty amount")
	}
	if got, _ := ParseMoney("200"); got != 20000 {
		t.Errorf("ParseMoney(\"200\") = %d, want 20000", got)
	}
}

func TestSplitSeatList(t *testing.T) {
	got := SplitSeatList("12a, 12b; 12A\n14c")
	want := []string{"12A", "12B", "14C"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("seat %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStringHelpers(t *testing.T) {
	if got := NormalizeSpace("  Siti   Rahma  "); got != "Siti Rahma" {
		t.Errorf("NormalizeSpace = %q", got)
	}
	if got := FirstNonEmpty("", "  ", "fallback", "later"); got != "fallback" {
		t.Errorf("FirstNonEmpty = %q", got)
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate(" 2026-06-15 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Location() != time.UTC {
		t.Error("parsed date not in UTC")
	}
	if got := FormatDate(d); got != "2026-06-15" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDateTime(d); got != "2026-06-15 00:00:00" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if _, err := ParseDate("15/06/2026"); err == nil {
		t.Error("expected error for wrong layout")
	}
	if NowUTC().Location() != time.UTC {
		t.Error("NowUTC not UTC")
	}
}
