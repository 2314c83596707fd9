// Package logbook holds the contact-log domain model: validation primitives,
// the QSO entity, the closed set of log variants sharing a common header,
// duplicate detection, the log-creation guard, and activation status.
package logbook

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrEmptyCallsign     = errors.New("callsign cannot be empty")
	ErrInvalidCallsign   = errors.New("invalid callsign")
	ErrInvalidParkRef    = errors.New("invalid park reference")
	ErrInvalidGridSquare = errors.New("invalid grid square")
	ErrEmptySection      = errors.New("section cannot be empty")
	ErrInvalidTxCount    = errors.New("invalid transmitter count")
	ErrInvalidClass      = errors.New("invalid operating class")
	ErrInvalidPower      = errors.New("invalid power category")
	ErrEmptyReport       = errors.New("signal report cannot be empty")
	ErrInvalidBand       = errors.New("invalid band")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrMissingTimestamp  = errors.New("timestamp is required")
	ErrInvalidLogID      = errors.New("log id cannot be empty")
)

// Field names the input that failed validation.
type Field string

const (
	FieldCallsign        Field = "callsign"
	FieldStationCallsign Field = "station_callsign"
	FieldOperator        Field = "operator"
	FieldParkRef         Field = "park_ref"
	FieldGridSquare      Field = "grid_square"
	FieldTxCount         Field = "tx_count"
	FieldOpClass         Field = "class"
	FieldSection         Field = "section"
	FieldPower           Field = "power"
	FieldTheirCall       Field = "their_call"
	FieldRSTSent         Field = "rst_sent"
	FieldRSTRcvd         Field = "rst_rcvd"
	FieldBand            Field = "band"
	FieldMode            Field = "mode"
	FieldTimestamp       Field = "timestamp"
	FieldTheirPark       Field = "their_park"
	FieldFrequency       Field = "frequency"
	FieldLogID           Field = "log_id"
)

// ValidationError reports which field of which log variant was rejected.
// Kind is zero for errors that are not tied to a log variant (QSO fields and
// the bare primitives).
type ValidationError struct {
	Kind  Kind
	Field Field
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	prefix := string(e.Field)
	if e.Kind != 0 {
		prefix = e.Kind.String() + " " + prefix
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s: %v: %q", prefix, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// scoped re-tags a primitive failure with the variant and field it came from.
func scoped(kind Kind, field Field, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		out := *ve
		out.Kind = kind
		out.Field = field
		return &out
	}
	return &ValidationError{Kind: kind, Field: field, Err: err}
}

var (
	parkRefPattern    = regexp.MustCompile(`^[A-Z]{1,3}-[0-9]{4,5}$`)
	gridSquarePattern = regexp.MustCompile(`^[A-R]{2}[0-9]{2}([a-x]{2})?$`)
)

// ValidateCallsign accepts a non-empty string of ASCII letters, digits and '/'.
func ValidateCallsign(call string) error {
	if call == "" {
		return &ValidationError{Field: FieldCallsign, Err: ErrEmptyCallsign}
	}
	for i := 0; i < len(call); i++ {
		c := call[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '/':
		default:
			return &ValidationError{Field: FieldCallsign, Value: call, Err: ErrInvalidCallsign}
		}
	}
	return nil
}

// ValidateParkRef accepts program references such as K-0001 or VE-01234.
func ValidateParkRef(ref string) error {
	if !parkRefPattern.MatchString(ref) {
		return &ValidationError{Field: FieldParkRef, Value: ref, Err: ErrInvalidParkRef}
	}
	return nil
}

// ValidateGridSquare accepts a 4 or 6 character Maidenhead locator (FN31, FN31pr).
func ValidateGridSquare(grid string) error {
	if !gridSquarePattern.MatchString(grid) {
		return &ValidationError{Field: FieldGridSquare, Value: grid, Err: ErrInvalidGridSquare}
	}
	return nil
}

func validateSection(section string) error {
	if section == "" {
		return &ValidationError{Field: FieldSection, Err: ErrEmptySection}
	}
	return nil
}

func validateTxCount(n, min, max int) error {
	if n < min || (max > 0 && n > max) {
		return &ValidationError{Field: FieldTxCount, Value: fmt.Sprint(n), Err: ErrInvalidTxCount}
	}
	return nil
}
