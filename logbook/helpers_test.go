package logbook

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 2, 16, 14, 30, 0, 0, time.UTC)

// freezeNow pins the package clock for the duration of the test.
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowUTC
	nowUTC = func() time.Time { return at }
	t.Cleanup(func() { nowUTC = prev })
}

func mustQSO(t *testing.T, call string, band Band, mode Mode, at time.Time) QSO {
	t.Helper()
	q, err := NewQSO(QSOParams{
		TheirCall: call,
		RSTSent:   mode.DefaultRST(),
		RSTRcvd:   mode.DefaultRST(),
		Band:      band,
		Mode:      mode,
		Timestamp: at,
	})
	if err != nil {
		t.Fatalf("NewQSO(%s): %v", call, err)
	}
	return q
}

func mustParkLog(t *testing.T, call, park string) *ParkLog {
	t.Helper()
	l, err := NewParkLog(Station{Callsign: call, GridSquare: "FN31pr"}, park)
	if err != nil {
		t.Fatalf("NewParkLog: %v", err)
	}
	return l
}

func mustFieldContestLog(t *testing.T) *FieldContestLog {
	t.Helper()
	l, err := NewFieldContestLog(Station{Callsign: "W1AW", GridSquare: "FN31"}, FieldContestSetup{
		TxCount: 3, Class: FieldClassA, Section: "epa", Power: PowerLow,
	})
	if err != nil {
		t.Fatalf("NewFieldContestLog: %v", err)
	}
	return l
}
