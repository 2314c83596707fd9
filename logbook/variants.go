package logbook

import (
	"fmt"
	"strings"
	"time"

	"hamlog/strutil"
)

// GeneralLog is a general-purpose log with no variant-specific setup.
type GeneralLog struct {
	header
}

// NewGeneralLog validates the station (callsign, operator, grid square) and
// returns an empty log identified as "{CALLSIGN}-YYYYMMDD-HHMMSS".
func NewGeneralLog(st Station) (*GeneralLog, error) {
	return buildGeneralLog(st, nowUTC())
}

func buildGeneralLog(st Station, createdAt time.Time) (*GeneralLog, error) {
	st = st.normalize()
	if err := validateStation(KindGeneral, st); err != nil {
		return nil, err
	}
	if err := validateGrid(KindGeneral, st.GridSquare); err != nil {
		return nil, err
	}
	return &GeneralLog{header: newHeader(st, st.Callsign, createdAt)}, nil
}

func (l *GeneralLog) Kind() Kind { return KindGeneral }
func (l *GeneralLog) Label() string { return l.stationCallsign }

// ParkLog is a park-activation log. ParkRef is optional so an activator can
// open the log before choosing a park; without it no park fields are exported.
type ParkLog struct {
	header
	parkRef string
}

// NewParkLog checks callsign, operator, park reference and grid square in
// that order. The log id is prefixed with the park reference, or with the
// callsign when no park is set.
func NewParkLog(st Station, parkRef string) (*ParkLog, error) {
	return buildParkLog(st, parkRef, nowUTC())
}

func buildParkLog(st Station, parkRef string, createdAt time.Time) (*ParkLog, error) {
	st = st.normalize()
	parkRef = strutil.NormalizeUpper(parkRef)
	if err := validateStation(KindPark, st); err != nil {
		return nil, err
	}
	if parkRef != "" {
		if err := ValidateParkRef(parkRef); err != nil {
			return nil, scoped(KindPark, FieldParkRef, err)
		}
	}
	if err := validateGrid(KindPark, st.GridSquare); err != nil {
		return nil, err
	}
	prefix := parkRef
	if prefix == "" {
		prefix = st.Callsign
	}
	return &ParkLog{header: newHeader(st, prefix, createdAt), parkRef: parkRef}, nil
}

func (l *ParkLog) Kind() Kind { return KindPark }

// ParkRef returns the activated park, or "" when none was set.
func (l *ParkLog) ParkRef() string { return l.parkRef }

func (l *ParkLog) Label() string {
	if l.parkRef != "" {
		return l.parkRef
	}
	return l.stationCallsign
}

// FieldClass is the Field Day operating class.
type FieldClass string

const (
	FieldClassA FieldClass = "A" // club or group portable, 3+ operators
	FieldClassB FieldClass = "B" // 1-2 operator portable
	FieldClassC FieldClass = "C" // mobile
	FieldClassD FieldClass = "D" // home station, commercial power
	FieldClassE FieldClass = "E" // home station, emergency power
	FieldClassF FieldClass = "F" // emergency operations center
)

func (c FieldClass) Valid() bool {
	switch c {
	case FieldClassA, FieldClassB, FieldClassC, FieldClassD, FieldClassE, FieldClassF:
		return true
	}
	return false
}

// ParseFieldClass accepts A-F in either case.
func ParseFieldClass(s string) (FieldClass, error) {
	c := FieldClass(strutil.NormalizeUpper(s))
	if !c.Valid() {
		return "", &ValidationError{Kind: KindFieldContest, Field: FieldOpClass, Value: s, Err: ErrInvalidClass}
	}
	return c, nil
}

// PowerCategory is the Field Day output-power bracket.
type PowerCategory string

const (
	PowerQRP  PowerCategory = "QRP"  // 5 W or less, non-commercial power
	PowerLow  PowerCategory = "LOW"  // 100 W or less
	PowerHigh PowerCategory = "HIGH" // over 100 W
)

func (p PowerCategory) Valid() bool {
	switch p {
	case PowerQRP, PowerLow, PowerHigh:
		return true
	}
	return false
}

// ParsePowerCategory accepts qrp, low or high in either case.
func ParsePowerCategory(s string) (PowerCategory, error) {
	p := PowerCategory(strutil.NormalizeUpper(s))
	if !p.Valid() {
		return "", &ValidationError{Kind: KindFieldContest, Field: FieldPower, Value: s, Err: ErrInvalidPower}
	}
	return p, nil
}

const maxFieldContestTransmitters = 20

// FieldContestSetup is the Field Day exchange configuration.
type FieldContestSetup struct {
	TxCount int
	Class   FieldClass
	Section string
	Power   PowerCategory
}

// FieldContestLog is a Field Day contest log.
type FieldContestLog struct {
	header
	setup FieldContestSetup
}

// NewFieldContestLog checks callsign, operator, transmitter count (1-20),
// class, section, power category and grid square in that order. The section
// is upper-cased. The log id is "FD-{CALLSIGN}-YYYYMMDD-HHMMSS".
func NewFieldContestLog(st Station, setup FieldContestSetup) (*FieldContestLog, error) {
	return buildFieldContestLog(st, setup, nowUTC())
}

func buildFieldContestLog(st Station, setup FieldContestSetup, createdAt time.Time) (*FieldContestLog, error) {
	st = st.normalize()
	setup.Class = FieldClass(strutil.NormalizeUpper(string(setup.Class)))
	setup.Section = strutil.NormalizeUpper(setup.Section)
	setup.Power = PowerCategory(strutil.NormalizeUpper(string(setup.Power)))
	if err := validateStation(KindFieldContest, st); err != nil {
		return nil, err
	}
	if err := validateFieldContestSetup(setup); err != nil {
		return nil, err
	}
	if err := validateGrid(KindFieldContest, st.GridSquare); err != nil {
		return nil, err
	}
	return &FieldContestLog{header: newHeader(st, "FD-"+st.Callsign, createdAt), setup: setup}, nil
}

func validateFieldContestSetup(setup FieldContestSetup) error {
	if err := validateTxCount(setup.TxCount, 1, maxFieldContestTransmitters); err != nil {
		return scoped(KindFieldContest, FieldTxCount, err)
	}
	if !setup.Class.Valid() {
		return &ValidationError{Kind: KindFieldContest, Field: FieldOpClass, Value: string(setup.Class), Err: ErrInvalidClass}
	}
	if err := validateSection(setup.Section); err != nil {
		return scoped(KindFieldContest, FieldSection, err)
	}
	if !setup.Power.Valid() {
		return &ValidationError{Kind: KindFieldContest, Field: FieldPower, Value: string(setup.Power), Err: ErrInvalidPower}
	}
	return nil
}

func (l *FieldContestLog) Kind() Kind { return KindFieldContest }

// Setup returns the exchange configuration.
func (l *FieldContestLog) Setup() FieldContestSetup { return l.setup }

// SentExchange is the exchange sent with every contact, e.g. "3A EPA".
func (l *FieldContestLog) SentExchange() string {
	return sentExchange(l.setup.TxCount, string(l.setup.Class), l.setup.Section)
}

func (l *FieldContestLog) Label() string { return l.SentExchange() }

// WinterClass is the Winter Field Day operating class.
type WinterClass string

const (
	WinterClassHome    WinterClass = "H" // inside a permanent residence
	WinterClassIndoor  WinterClass = "I" // weather-protected building
	WinterClassOutdoor WinterClass = "O" // partly or fully exposed shelter
	WinterClassMobile  WinterClass = "M" // vehicle, RV or boat
)

func (c WinterClass) Valid() bool {
	switch c {
	case WinterClassHome, WinterClassIndoor, WinterClassOutdoor, WinterClassMobile:
		return true
	}
	return false
}

// ParseWinterClass accepts H, I, O or M in either case.
func ParseWinterClass(s string) (WinterClass, error) {
	c := WinterClass(strutil.NormalizeUpper(s))
	if !c.Valid() {
		return "", &ValidationError{Kind: KindWinterContest, Field: FieldOpClass, Value: s, Err: ErrInvalidClass}
	}
	return c, nil
}

// WinterContestSetup is the Winter Field Day exchange configuration.
type WinterContestSetup struct {
	TxCount int
	Class   WinterClass
	Section string
}

// WinterContestLog is a Winter Field Day contest log.
type WinterContestLog struct {
	header
	setup WinterContestSetup
}

// NewWinterContestLog checks callsign, operator, transmitter count (at least
// one), class, section and grid square in that order. The log id is
// "WFD-{CALLSIGN}-YYYYMMDD-HHMMSS".
func NewWinterContestLog(st Station, setup WinterContestSetup) (*WinterContestLog, error) {
	return buildWinterContestLog(st, setup, nowUTC())
}

func buildWinterContestLog(st Station, setup WinterContestSetup, createdAt time.Time) (*WinterContestLog, error) {
	st = st.normalize()
	setup.Class = WinterClass(strutil.NormalizeUpper(string(setup.Class)))
	setup.Section = strutil.NormalizeUpper(setup.Section)
	if err := validateStation(KindWinterContest, st); err != nil {
		return nil, err
	}
	if err := validateWinterContestSetup(setup); err != nil {
		return nil, err
	}
	if err := validateGrid(KindWinterContest, st.GridSquare); err != nil {
		return nil, err
	}
	return &WinterContestLog{header: newHeader(st, "WFD-"+st.Callsign, createdAt), setup: setup}, nil
}

func validateWinterContestSetup(setup WinterContestSetup) error {
	if err := validateTxCount(setup.TxCount, 1, 0); err != nil {
		return scoped(KindWinterContest, FieldTxCount, err)
	}
	if !setup.Class.Valid() {
		return &ValidationError{Kind: KindWinterContest, Field: FieldOpClass, Value: string(setup.Class), Err: ErrInvalidClass}
	}
	if err := validateSection(setup.Section); err != nil {
		return scoped(KindWinterContest, FieldSection, err)
	}
	return nil
}

func (l *WinterContestLog) Kind() Kind { return KindWinterContest }

// Setup returns the exchange configuration.
func (l *WinterContestLog) Setup() WinterContestSetup { return l.setup }

// SentExchange is the exchange sent with every contact, e.g. "1H CT".
func (l *WinterContestLog) SentExchange() string {
	return sentExchange(l.setup.TxCount, string(l.setup.Class), l.setup.Section)
}

func (l *WinterContestLog) Label() string { return l.SentExchange() }

func sentExchange(txCount int, class, section string) string {
	return fmt.Sprintf("%d%s %s", txCount, class, strings.TrimSpace(section))
}
