package logbook

import (
	"fmt"
	"time"
)

// Snapshot is the flat, storage-neutral image of a Log. Only the fields that
// belong to Kind are meaningful; the rest are zero.
type Snapshot struct {
	Kind          Kind
	LogID         string
	Station       Station
	CreatedAt     time.Time
	ParkRef       string
	FieldContest  FieldContestSetup
	WinterContest WinterContestSetup
	QSOs          []QSOParams
}

// SnapshotOf captures l for persistence.
func SnapshotOf(l Log) Snapshot {
	h := l.base()
	snap := Snapshot{
		Kind:  l.Kind(),
		LogID: h.logID,
		Station: Station{
			Callsign:   h.stationCallsign,
			Operator:   h.operator,
			GridSquare: h.gridSquare,
		},
		CreatedAt: h.createdAt,
		QSOs:      make([]QSOParams, len(h.qsos)),
	}
	for i, q := range h.qsos {
		snap.QSOs[i] = q.p
	}
	switch v := l.(type) {
	case *ParkLog:
		snap.ParkRef = v.parkRef
	case *FieldContestLog:
		snap.FieldContest = v.setup
	case *WinterContestLog:
		snap.WinterContest = v.setup
	case *GeneralLog:
	}
	return snap
}

// FromSnapshot rebuilds a Log from stored data. Every constructor check runs
// again, in the same order, and each stored contact goes through NewQSO, so a
// hand-edited or outdated record cannot produce a Log the constructors would
// have refused. The stored log id and creation time are kept.
func FromSnapshot(s Snapshot) (Log, error) {
	if s.CreatedAt.IsZero() {
		return nil, &ValidationError{Kind: s.Kind, Field: FieldTimestamp, Err: ErrMissingTimestamp}
	}
	var (
		l   Log
		err error
	)
	switch s.Kind {
	case KindGeneral:
		l, err = asLog(buildGeneralLog(s.Station, s.CreatedAt))
	case KindPark:
		l, err = asLog(buildParkLog(s.Station, s.ParkRef, s.CreatedAt))
	case KindFieldContest:
		l, err = asLog(buildFieldContestLog(s.Station, s.FieldContest, s.CreatedAt))
	case KindWinterContest:
		l, err = asLog(buildWinterContestLog(s.Station, s.WinterContest, s.CreatedAt))
	default:
		return nil, fmt.Errorf("logbook: unknown log kind %d", uint8(s.Kind))
	}
	if err != nil {
		return nil, err
	}
	if s.LogID == "" {
		return nil, &ValidationError{Kind: s.Kind, Field: FieldLogID, Err: ErrInvalidLogID}
	}
	h := l.base()
	h.logID = s.LogID
	h.qsos = make([]QSO, 0, len(s.QSOs))
	for i, p := range s.QSOs {
		q, err := NewQSO(p)
		if err != nil {
			return nil, fmt.Errorf("qso %d: %w", i, err)
		}
		h.qsos = append(h.qsos, q)
	}
	return l, nil
}

// asLog converts a typed constructor result without leaking a typed nil
// pointer into the interface on error.
func asLog[T Log](v T, err error) (Log, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
