package logbook

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCheckDuplicateLog(t *testing.T) {
	freezeNow(t, testNow)
	existing := mustParkLog(t, "W1AW", "K-0001")

	freezeNow(t, testNow.Add(time.Minute))
	same := mustParkLog(t, "w1aw", "k-0001")
	err := CheckDuplicateLog([]Log{existing}, same)
	if !errors.Is(err, ErrDuplicateLog) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	var dle *DuplicateLogError
	if !errors.As(err, &dle) || dle.ExistingID != existing.LogID() || dle.Callsign != "W1AW" {
		t.Fatalf("unexpected error detail %+v", dle)
	}

	otherPark := mustParkLog(t, "W1AW", "K-0002")
	if err := CheckDuplicateLog([]Log{existing}, otherPark); err != nil {
		t.Fatalf("different park must be accepted: %v", err)
	}
	noPark := mustParkLog(t, "W1AW", "")
	if err := CheckDuplicateLog([]Log{existing}, noPark); err != nil {
		t.Fatalf("missing park ref must not match a set one: %v", err)
	}

	gen, err := NewGeneralLog(Station{Callsign: "W1AW", GridSquare: "FN31pr"})
	if err != nil {
		t.Fatalf("NewGeneralLog: %v", err)
	}
	if err := CheckDuplicateLog([]Log{existing}, gen); err != nil {
		t.Fatalf("general and park logs are never duplicates: %v", err)
	}

	withOp, err := NewParkLog(Station{Callsign: "W1AW", Operator: "K2ABC", GridSquare: "FN31pr"}, "K-0001")
	if err != nil {
		t.Fatalf("NewParkLog: %v", err)
	}
	if err := CheckDuplicateLog([]Log{existing}, withOp); err != nil {
		t.Fatalf("different operator must be accepted: %v", err)
	}

	freezeNow(t, testNow.Add(24*time.Hour))
	nextDay := mustParkLog(t, "W1AW", "K-0001")
	if err := CheckDuplicateLog([]Log{existing}, nextDay); err != nil {
		t.Fatalf("different day must be accepted: %v", err)
	}
}

func TestCheckDuplicateLogComparesGrid(t *testing.T) {
	freezeNow(t, testNow)
	existing, err := NewParkLog(Station{Callsign: "W1AW", GridSquare: "FN31pr"}, "K-0001")
	if err != nil {
		t.Fatalf("NewParkLog: %v", err)
	}

	freezeNow(t, testNow.Add(time.Minute))
	elsewhere, err := NewParkLog(Station{Callsign: "W1AW", GridSquare: "EM10"}, "K-0001")
	if err != nil {
		t.Fatalf("NewParkLog: %v", err)
	}
	if err := CheckDuplicateLog([]Log{existing}, elsewhere); err != nil {
		t.Fatalf("a different grid must be accepted: %v", err)
	}

	// Grid input is normalized, so differently cased input still matches.
	sameGrid, err := NewParkLog(Station{Callsign: "w1aw", GridSquare: "fn31PR"}, "k-0001")
	if err != nil {
		t.Fatalf("NewParkLog: %v", err)
	}
	if err := CheckDuplicateLog([]Log{existing}, sameGrid); !errors.Is(err, ErrDuplicateLog) {
		t.Fatalf("same grid in another case must be rejected, got %v", err)
	}
}

func TestSameLogIdentityIgnoresGridCase(t *testing.T) {
	freezeNow(t, testNow)
	a := mustParkLog(t, "W1AW", "K-0001")
	b := mustParkLog(t, "W1AW", "K-0001")
	// Logs loaded from hand-edited files can carry a grid in any case.
	b.gridSquare = strings.ToUpper(a.gridSquare)
	if !sameLogIdentity(a, b) {
		t.Fatalf("grids %q and %q must compare equal", a.gridSquare, b.gridSquare)
	}
}

func TestCheckDuplicateLogGeneralAndContest(t *testing.T) {
	freezeNow(t, testNow)
	gen1, _ := NewGeneralLog(Station{Callsign: "W1AW", GridSquare: "FN31"})
	fd1 := mustFieldContestLog(t)

	freezeNow(t, testNow.Add(time.Hour))
	gen2, _ := NewGeneralLog(Station{Callsign: "W1AW", GridSquare: "FN31"})
	if err := CheckDuplicateLog([]Log{gen1, fd1}, gen2); !errors.Is(err, ErrDuplicateLog) {
		t.Fatalf("second general log on the same day must be rejected, got %v", err)
	}
	moved, _ := NewGeneralLog(Station{Callsign: "W1AW", GridSquare: "EM10"})
	if err := CheckDuplicateLog([]Log{gen1, fd1}, moved); err != nil {
		t.Fatalf("a general log from another grid must be accepted: %v", err)
	}
	fd2 := mustFieldContestLog(t)
	if err := CheckDuplicateLog([]Log{gen1, fd1}, fd2); err != nil {
		t.Fatalf("contest logs are never duplicates: %v", err)
	}
	if err := CheckDuplicateLog([]Log{gen1}, gen1); err != nil {
		t.Fatalf("a log is not a duplicate of itself: %v", err)
	}
}
