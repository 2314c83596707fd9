package logbook

import (
	"math"
	"strings"
	"time"

	"hamlog/strutil"
)

// QSOParams carries the raw inputs for one contact. Optional fields are left
// at their zero value when not captured.
type QSOParams struct {
	TheirCall    string
	RSTSent      string
	RSTRcvd      string
	Band         Band
	Mode         Mode
	Timestamp    time.Time
	Comment      string
	TheirPark    string  // park-to-park reference; only park logs export it
	ExchangeRcvd string  // received contest exchange; only contest logs export it
	FrequencyKHz float64 // 0 when not captured
}

// QSO is one validated contact. It is immutable: edits replace the whole
// value through Log.UpdateQSO.
type QSO struct {
	p QSOParams
}

// NewQSO validates p and returns the contact. The other station's callsign,
// park reference and exchange are upper-cased; the timestamp is kept in UTC.
// Fields are checked in order: call, rst sent, rst received, band, mode,
// timestamp, their park, frequency.
func NewQSO(p QSOParams) (QSO, error) {
	p.TheirCall = strutil.NormalizeUpper(p.TheirCall)
	p.RSTSent = strings.TrimSpace(p.RSTSent)
	p.RSTRcvd = strings.TrimSpace(p.RSTRcvd)
	p.Comment = strings.TrimSpace(p.Comment)
	p.TheirPark = strutil.NormalizeUpper(p.TheirPark)
	p.ExchangeRcvd = strutil.CollapseUpper(p.ExchangeRcvd)

	if err := ValidateCallsign(p.TheirCall); err != nil {
		return QSO{}, scoped(0, FieldTheirCall, err)
	}
	if p.RSTSent == "" {
		return QSO{}, &ValidationError{Field: FieldRSTSent, Err: ErrEmptyReport}
	}
	if p.RSTRcvd == "" {
		return QSO{}, &ValidationError{Field: FieldRSTRcvd, Err: ErrEmptyReport}
	}
	if !p.Band.Valid() {
		return QSO{}, &ValidationError{Field: FieldBand, Err: ErrInvalidBand}
	}
	if !p.Mode.Valid() {
		return QSO{}, &ValidationError{Field: FieldMode, Err: ErrInvalidMode}
	}
	if p.Timestamp.IsZero() {
		return QSO{}, &ValidationError{Field: FieldTimestamp, Err: ErrMissingTimestamp}
	}
	p.Timestamp = p.Timestamp.UTC()
	if p.TheirPark != "" {
		if err := ValidateParkRef(p.TheirPark); err != nil {
			return QSO{}, scoped(0, FieldTheirPark, err)
		}
	}
	if p.FrequencyKHz != 0 {
		if math.IsNaN(p.FrequencyKHz) || math.IsInf(p.FrequencyKHz, 0) || p.FrequencyKHz < 0 {
			return QSO{}, &ValidationError{Field: FieldFrequency, Err: ErrInvalidFrequency}
		}
		p.FrequencyKHz = roundFrequencyTo100Hz(p.FrequencyKHz)
	}
	return QSO{p: p}, nil
}

// roundFrequencyTo100Hz normalizes a kHz value to the nearest 100 Hz (0.1 kHz).
func roundFrequencyTo100Hz(freqKHz float64) float64 {
	return math.Floor(freqKHz*10+0.5) / 10
}

// Params returns a copy of the validated inputs.
func (q QSO) Params() QSOParams { return q.p }

func (q QSO) TheirCall() string { return q.p.TheirCall }
func (q QSO) RSTSent() string { return q.p.RSTSent }
func (q QSO) RSTRcvd() string { return q.p.RSTRcvd }
func (q QSO) Band() Band { return q.p.Band }
func (q QSO) Mode() Mode { return q.p.Mode }
func (q QSO) Timestamp() time.Time { return q.p.Timestamp }
func (q QSO) Comment() string { return q.p.Comment }
func (q QSO) TheirPark() string { return q.p.TheirPark }
func (q QSO) ExchangeRcvd() string { return q.p.ExchangeRcvd }
func (q QSO) FrequencyKHz() float64 { return q.p.FrequencyKHz }
func (q QSO) HasFrequency() bool { return q.p.FrequencyKHz > 0 }
func (q QSO) IsParkToPark() bool { return q.p.TheirPark != "" }
func (q QSO) Equal(other QSO) bool { return q.p.equal(other.p) }

func (p QSOParams) equal(o QSOParams) bool {
	return p.TheirCall == o.TheirCall &&
		p.RSTSent == o.RSTSent &&
		p.RSTRcvd == o.RSTRcvd &&
		p.Band == o.Band &&
		p.Mode == o.Mode &&
		p.Timestamp.Equal(o.Timestamp) &&
		p.Comment == o.Comment &&
		p.TheirPark == o.TheirPark &&
		p.ExchangeRcvd == o.ExchangeRcvd &&
		p.FrequencyKHz == o.FrequencyKHz
}
