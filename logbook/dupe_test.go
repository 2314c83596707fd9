package logbook

import (
	"testing"
	"time"
)

func TestFindDuplicatesMatchesCallBandMode(t *testing.T) {
	freezeNow(t, testNow)
	l := mustParkLog(t, "W1AW", "K-0001")
	l.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, testNow.Add(-time.Hour)))
	l.AddQSO(mustQSO(t, "K2ABC", Band40M, ModeSSB, testNow.Add(-time.Hour)))
	l.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeCW, testNow.Add(-time.Hour)))
	l.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, testNow.Add(-time.Minute)))

	got := FindDuplicates(l, mustQSO(t, "k2abc", Band20M, ModeSSB, testNow))
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if len(FindDuplicates(l, mustQSO(t, "N0CALL", Band20M, ModeSSB, testNow))) != 0 {
		t.Fatalf("unexpected match for a new call")
	}
}

func TestFindDuplicatesScope(t *testing.T) {
	freezeNow(t, testNow)
	yesterday := testNow.Add(-24 * time.Hour)
	candidate := mustQSO(t, "K2ABC", Band20M, ModeSSB, testNow)

	park := mustParkLog(t, "W1AW", "K-0001")
	park.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday))
	if got := FindDuplicates(park, candidate); len(got) != 0 {
		t.Fatalf("park log flagged a contact from yesterday: %d", len(got))
	}

	gen, err := NewGeneralLog(Station{Callsign: "W1AW", GridSquare: "FN31"})
	if err != nil {
		t.Fatalf("NewGeneralLog: %v", err)
	}
	gen.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday))
	if got := FindDuplicates(gen, candidate); len(got) != 0 {
		t.Fatalf("general log flagged a contact from yesterday: %d", len(got))
	}

	fd := mustFieldContestLog(t)
	fd.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday))
	if got := FindDuplicates(fd, candidate); len(got) != 1 {
		t.Fatalf("field contest log must flag across days, got %d", len(got))
	}

	wfd, err := NewWinterContestLog(Station{Callsign: "W1AW", GridSquare: "FN31"}, WinterContestSetup{
		TxCount: 1, Class: WinterClassHome, Section: "CT",
	})
	if err != nil {
		t.Fatalf("NewWinterContestLog: %v", err)
	}
	wfd.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday))
	if got := FindDuplicates(wfd, candidate); len(got) != 1 {
		t.Fatalf("winter contest log must flag across days, got %d", len(got))
	}
}

func TestFindDuplicatesOnExplicitDay(t *testing.T) {
	l := mustParkLog(t, "W1AW", "K-0001")
	yesterday := testNow.Add(-24 * time.Hour)
	l.AddQSO(mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday))
	candidate := mustQSO(t, "K2ABC", Band20M, ModeSSB, yesterday)
	if got := FindDuplicatesOn(l, candidate, yesterday); len(got) != 1 {
		t.Fatalf("expected match on yesterday's date, got %d", len(got))
	}
	if got := FindDuplicatesOn(l, candidate, testNow); len(got) != 0 {
		t.Fatalf("expected no match today, got %d", len(got))
	}
}

func TestSimilarCalls(t *testing.T) {
	freezeNow(t, testNow)
	fd := mustFieldContestLog(t)
	fd.AddQSO(mustQSO(t, "W1AW", Band20M, ModeCW, testNow.Add(-time.Hour)))
	fd.AddQSO(mustQSO(t, "W1AX", Band40M, ModeCW, testNow.Add(-time.Hour)))
	fd.AddQSO(mustQSO(t, "K9XYZ", Band20M, ModeCW, testNow.Add(-time.Hour)))

	got := SimilarCalls(fd, mustQSO(t, "W1AX", Band20M, ModeCW, testNow), 1)
	if len(got) != 1 || got[0].TheirCall() != "W1AW" {
		t.Fatalf("expected W1AW as a similar call, got %+v", got)
	}
	if got := SimilarCalls(fd, mustQSO(t, "W1AW", Band20M, ModeCW, testNow), 1); len(got) != 0 {
		t.Fatalf("identical calls are duplicates, not similar calls: %+v", got)
	}
	if got := SimilarCalls(fd, mustQSO(t, "W1AX", Band20M, ModeCW, testNow), 0); got != nil {
		t.Fatalf("distance 0 disables the check")
	}
}

func TestDuplicateMatchIgnoresStoredCallCase(t *testing.T) {
	freezeNow(t, testNow)
	l := mustParkLog(t, "W1AW", "K-0001")
	stored := mustQSO(t, "K2ABC", Band20M, ModeSSB, testNow.Add(-time.Hour))
	stored.p.TheirCall = "k2abc"
	l.AddQSO(stored)

	incoming := mustQSO(t, "K2ABC", Band20M, ModeSSB, testNow)
	if got := FindDuplicates(l, incoming); len(got) != 1 {
		t.Fatalf("expected a match against a lower-case stored call, got %d", len(got))
	}
	if contactKey(stored) != contactKey(incoming) {
		t.Fatalf("contact keys differ by call case")
	}
	l.AddQSO(incoming)
	if got := QSOCountOn(l, testNow); got != 1 {
		t.Fatalf("repeat contact counted twice: %d", got)
	}
}
