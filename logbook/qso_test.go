package logbook

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewQSONormalizes(t *testing.T) {
	local := time.FixedZone("EST", -5*3600)
	q, err := NewQSO(QSOParams{
		TheirCall:    " k2abc ",
		RSTSent:      "59",
		RSTRcvd:      " 57 ",
		Band:         Band20M,
		Mode:         ModeSSB,
		Timestamp:    time.Date(2026, 2, 16, 9, 0, 0, 0, local),
		TheirPark:    "k-1234",
		ExchangeRcvd: "2a   wma",
		FrequencyKHz: 14285.04,
	})
	if err != nil {
		t.Fatalf("NewQSO: %v", err)
	}
	if q.TheirCall() != "K2ABC" || q.RSTRcvd() != "57" || q.TheirPark() != "K-1234" {
		t.Fatalf("unexpected normalization: %+v", q.Params())
	}
	if q.ExchangeRcvd() != "2A WMA" {
		t.Fatalf("unexpected exchange %q", q.ExchangeRcvd())
	}
	if q.Timestamp().Location() != time.UTC || q.Timestamp().Hour() != 14 {
		t.Fatalf("timestamp not converted to UTC: %v", q.Timestamp())
	}
	if q.FrequencyKHz() != 14285.0 || !q.HasFrequency() {
		t.Fatalf("frequency not rounded to 100 Hz: %v", q.FrequencyKHz())
	}
	if !q.IsParkToPark() {
		t.Fatalf("expected park-to-park")
	}
}

func TestNewQSOCheckOrder(t *testing.T) {
	base := QSOParams{
		TheirCall: "W1AW", RSTSent: "59", RSTRcvd: "59",
		Band: Band20M, Mode: ModeSSB, Timestamp: testNow,
	}
	cases := []struct {
		name  string
		edit  func(p *QSOParams)
		field Field
		want  error
	}{
		{"call wins", func(p *QSOParams) { p.TheirCall = ""; p.RSTSent = ""; p.Band = 0 }, FieldTheirCall, ErrEmptyCallsign},
		{"rst sent before band", func(p *QSOParams) { p.RSTSent = " "; p.Band = 0 }, FieldRSTSent, ErrEmptyReport},
		{"rst rcvd", func(p *QSOParams) { p.RSTRcvd = "" }, FieldRSTRcvd, ErrEmptyReport},
		{"band before mode", func(p *QSOParams) { p.Band = 0; p.Mode = 0 }, FieldBand, ErrInvalidBand},
		{"mode", func(p *QSOParams) { p.Mode = 99 }, FieldMode, ErrInvalidMode},
		{"timestamp", func(p *QSOParams) { p.Timestamp = time.Time{} }, FieldTimestamp, ErrMissingTimestamp},
		{"their park", func(p *QSOParams) { p.TheirPark = "K-1" }, FieldTheirPark, ErrInvalidParkRef},
		{"frequency", func(p *QSOParams) { p.FrequencyKHz = math.NaN() }, FieldFrequency, ErrInvalidFrequency},
		{"negative frequency", func(p *QSOParams) { p.FrequencyKHz = -7030 }, FieldFrequency, ErrInvalidFrequency},
	}
	for _, tc := range cases {
		p := base
		tc.edit(&p)
		_, err := NewQSO(p)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field || !errors.Is(err, tc.want) {
			t.Fatalf("%s: got field=%s err=%v, want field=%s err=%v", tc.name, ve.Field, err, tc.field, tc.want)
		}
	}
}

func TestQSOEqual(t *testing.T) {
	a := mustQSO(t, "W1AW", Band20M, ModeCW, testNow)
	b := mustQSO(t, "w1aw", Band20M, ModeCW, testNow.In(time.FixedZone("X", 3600)))
	if !a.Equal(b) {
		t.Fatalf("expected equal QSOs after normalization")
	}
	c := mustQSO(t, "W1AW", Band40M, ModeCW, testNow)
	if a.Equal(c) {
		t.Fatalf("expected different band to differ")
	}
}
