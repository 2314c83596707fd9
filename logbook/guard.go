package logbook

import (
	"fmt"
	"time"

	"hamlog/strutil"
)

// DuplicateLogError is returned by CheckDuplicateLog when an equivalent log
// was already created on the same UTC day.
type DuplicateLogError struct {
	ExistingID string
	Kind       Kind
	Callsign   string
	Date       time.Time
}

func (e *DuplicateLogError) Error() string {
	return fmt.Sprintf("a %s log for %s already exists for %s (%s)",
		e.Kind, e.Callsign, e.Date.Format("2006-01-02"), e.ExistingID)
}

func (e *DuplicateLogError) Unwrap() error { return ErrDuplicateLog }

// CheckDuplicateLog rejects candidate when one of existing has the same
// variant, station callsign, operator, grid square and park reference and was
// created on the same UTC day. Comparisons ignore case. Contest logs are never
// duplicates of one another.
func CheckDuplicateLog(existing []Log, candidate Log) error {
	if candidate == nil {
		return nil
	}
	for _, prior := range existing {
		if prior == nil || prior.LogID() == candidate.LogID() {
			continue
		}
		if sameLogIdentity(prior, candidate) {
			return &DuplicateLogError{
				ExistingID: prior.LogID(),
				Kind:       candidate.Kind(),
				Callsign:   candidate.StationCallsign(),
				Date:       candidate.CreatedAt().UTC().Truncate(24 * time.Hour),
			}
		}
	}
	return nil
}

func sameLogIdentity(a, b Log) bool {
	if !sameUTCDay(a.CreatedAt(), b.CreatedAt()) {
		return false
	}
	if !strutil.EqualFold(a.StationCallsign(), b.StationCallsign()) ||
		!strutil.EqualFold(a.Operator(), b.Operator()) ||
		!strutil.EqualFold(a.GridSquare(), b.GridSquare()) {
		return false
	}
	switch pa := a.(type) {
	case *GeneralLog:
		_, ok := b.(*GeneralLog)
		return ok
	case *ParkLog:
		pb, ok := b.(*ParkLog)
		return ok && strutil.EqualFold(pa.parkRef, pb.parkRef)
	case *FieldContestLog, *WinterContestLog:
		return false
	default:
		return false
	}
}
