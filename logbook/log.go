package logbook

import (
	"errors"
	"fmt"
	"time"

	"hamlog/strutil"
)

// Kind is the discriminant of the closed Log union.
type Kind uint8

const (
	KindGeneral Kind = iota + 1
	KindPark
	KindFieldContest
	KindWinterContest
)

// Kinds lists every log variant.
func Kinds() []Kind {
	return []Kind{KindGeneral, KindPark, KindFieldContest, KindWinterContest}
}

func (k Kind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindPark:
		return "park"
	case KindFieldContest:
		return "field_contest"
	case KindWinterContest:
		return "winter_contest"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind resolves the names produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("logbook: unknown log kind %q", name)
}

var (
	ErrQSOIndexOutOfRange = errors.New("qso index out of range")
	ErrDuplicateLog       = errors.New("duplicate log")
)

// IndexError reports an UpdateQSO call with an index outside the QSO sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("qso index %d out of range (log has %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrQSOIndexOutOfRange }

// Station holds the header inputs shared by every variant. An empty Operator
// means the station callsign operated alone.
type Station struct {
	Callsign   string
	Operator   string
	GridSquare string
}

func (s Station) normalize() Station {
	return Station{
		Callsign:   strutil.NormalizeUpper(s.Callsign),
		Operator:   strutil.NormalizeUpper(s.Operator),
		GridSquare: normalizeGrid(s.GridSquare),
	}
}

// normalizeGrid upper-cases the field/square pair and lower-cases the
// subsquare, the conventional Maidenhead spelling (fn31PR -> FN31pr).
func normalizeGrid(grid string) string {
	grid = strutil.NormalizeUpper(grid)
	if len(grid) == 6 {
		return grid[:4] + string([]byte{lowerASCII(grid[4]), lowerASCII(grid[5])})
	}
	return grid
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Log is one operating session. The set of implementations is closed:
// *GeneralLog, *ParkLog, *FieldContestLog and *WinterContestLog.
type Log interface {
	Kind() Kind
	LogID() string
	StationCallsign() string
	Operator() string
	GridSquare() string
	CreatedAt() time.Time
	QSOs() []QSO
	Len() int
	QSO(index int) (QSO, bool)
	AddQSO(q QSO)
	UpdateQSO(index int, q QSO) error
	// Label is a short human-readable name for log pickers.
	Label() string

	base() *header
}

// header is embedded by every variant. Its fields are unexported so a Log
// can only be obtained from a validating constructor or FromSnapshot.
type header struct {
	stationCallsign string
	operator        string
	gridSquare      string
	qsos            []QSO
	createdAt       time.Time
	logID           string
}

func (h *header) base() *header { return h }
func (h *header) LogID() string { return h.logID }
func (h *header) StationCallsign() string { return h.stationCallsign }
func (h *header) Operator() string { return h.operator }
func (h *header) GridSquare() string { return h.gridSquare }
func (h *header) CreatedAt() time.Time { return h.createdAt }
func (h *header) Len() int { return len(h.qsos) }

// QSOs returns a copy of the contact sequence in logging order.
func (h *header) QSOs() []QSO {
	out := make([]QSO, len(h.qsos))
	copy(out, h.qsos)
	return out
}

// QSO returns the contact at index.
func (h *header) QSO(index int) (QSO, bool) {
	if index < 0 || index >= len(h.qsos) {
		return QSO{}, false
	}
	return h.qsos[index], true
}

// AddQSO appends q. Duplicates are allowed; callers ask FindDuplicates first
// when they want to warn the operator.
func (h *header) AddQSO(q QSO) {
	h.qsos = append(h.qsos, q)
}

// UpdateQSO replaces the contact at index with q.
func (h *header) UpdateQSO(index int, q QSO) error {
	if index < 0 || index >= len(h.qsos) {
		return &IndexError{Index: index, Len: len(h.qsos)}
	}
	h.qsos[index] = q
	return nil
}

// validateStation runs the shared header checks in their fixed order:
// station callsign, then operator. The grid square is checked last by the
// caller, after the variant-specific fields.
func validateStation(kind Kind, st Station) error {
	if err := ValidateCallsign(st.Callsign); err != nil {
		return scoped(kind, FieldStationCallsign, err)
	}
	if st.Operator != "" {
		if err := ValidateCallsign(st.Operator); err != nil {
			return scoped(kind, FieldOperator, err)
		}
	}
	return nil
}

func validateGrid(kind Kind, grid string) error {
	return scoped(kind, FieldGridSquare, ValidateGridSquare(grid))
}

// logIDFor derives the identifier from the variant prefix and creation time.
// Second granularity plus the prefix is unique for a single operator.
func logIDFor(prefix string, createdAt time.Time) string {
	return prefix + "-" + createdAt.UTC().Format("20060102-150405")
}

func newHeader(st Station, idPrefix string, createdAt time.Time) header {
	createdAt = createdAt.UTC()
	return header{
		stationCallsign: st.Callsign,
		operator:        st.Operator,
		gridSquare:      st.GridSquare,
		createdAt:       createdAt,
		logID:           logIDFor(idPrefix, createdAt),
	}
}

var nowUTC = func() time.Time { return time.Now().UTC() }
