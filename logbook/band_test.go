package logbook

import (
	"errors"
	"testing"
)

func TestParseBandAcceptsLegacyAndSpelledNames(t *testing.T) {
	cases := map[string]Band{
		"20M":       Band20M,
		"20m":       Band20M,
		"M20":       Band20M,
		"20 meters": Band20M,
		"70cm":      Band70CM,
		"Cm70":      Band70CM,
		"160M":      Band160M,
	}
	for in, want := range cases {
		got, err := ParseBand(in)
		if err != nil {
			t.Fatalf("ParseBand(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseBand(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseBand("11M"); !errors.Is(err, ErrInvalidBand) {
		t.Fatalf("expected ErrInvalidBand for 11M, got %v", err)
	}
}

func TestBandTableCoversEveryBand(t *testing.T) {
	bands := Bands()
	if len(bands) != 13 {
		t.Fatalf("expected 13 bands, got %d", len(bands))
	}
	for _, b := range bands {
		if b.String() == "" {
			t.Fatalf("band %d has no name", b)
		}
		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", b, err)
		}
		var back Band
		if err := back.UnmarshalText(text); err != nil || back != b {
			t.Fatalf("UnmarshalText(%s) = %s, %v", text, back, err)
		}
	}
}

func TestBandForFrequency(t *testing.T) {
	cases := []struct {
		khz  float64
		want Band
		ok   bool
	}{
		{14074, Band20M, true},
		{7030, Band40M, true},
		{146520, Band2M, true},
		{1800, Band160M, true},
		{11000, 0, false},
	}
	for _, tc := range cases {
		got, ok := BandForFrequency(tc.khz)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("BandForFrequency(%v) = %s,%v want %s,%v", tc.khz, got, ok, tc.want, tc.ok)
		}
	}
}

func TestModeDefaultsAndParsing(t *testing.T) {
	if len(Modes()) != 10 {
		t.Fatalf("expected 10 modes, got %d", len(Modes()))
	}
	rst := map[Mode]string{ModeSSB: "59", ModeCW: "599", ModeFT8: "-10", ModeRTTY: "599", ModeFM: "59"}
	for m, want := range rst {
		if got := m.DefaultRST(); got != want {
			t.Fatalf("%s.DefaultRST() = %q, want %q", m, got, want)
		}
	}
	m, err := ParseMode("ft8")
	if err != nil || m != ModeFT8 {
		t.Fatalf("ParseMode(ft8) = %s, %v", m, err)
	}
	if _, err := ParseMode("OLIVIA"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if Mode(0).Valid() || Mode(0).String() != "" {
		t.Fatalf("zero mode must be invalid")
	}
}
