package logbook

import "strings"

// Mode is one of the fixed operating modes a contact can be logged in.
type Mode uint8

const (
	ModeSSB Mode = iota + 1
	ModeCW
	ModeFT8
	ModeFT4
	ModeJS8
	ModePSK31
	ModeRTTY
	ModeFM
	ModeAM
	ModeDIGI
)

var modeNames = [...]string{
	ModeSSB:   "SSB",
	ModeCW:    "CW",
	ModeFT8:   "FT8",
	ModeFT4:   "FT4",
	ModeJS8:   "JS8",
	ModePSK31: "PSK31",
	ModeRTTY:  "RTTY",
	ModeFM:    "FM",
	ModeAM:    "AM",
	ModeDIGI:  "DIGI",
}

// Modes returns every supported mode.
func Modes() []Mode {
	out := make([]Mode, 0, len(modeNames)-1)
	for m := ModeSSB; m <= ModeDIGI; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeSSB && m <= ModeDIGI
}

// String returns the ADIF mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return ""
	}
	return modeNames[m]
}

// DefaultRST is the customary signal report for the mode: phone uses 59,
// CW and keyboard modes 599, weak-signal digital modes a dB report.
func (m Mode) DefaultRST() string {
	switch m {
	case ModeSSB, ModeFM, ModeAM:
		return "59"
	case ModeCW, ModePSK31, ModeRTTY:
		return "599"
	case ModeFT8, ModeFT4, ModeJS8, ModeDIGI:
		return "-10"
	default:
		return ""
	}
}

// ParseMode resolves a mode name case-insensitively ("ssb", "Ft8").
func ParseMode(name string) (Mode, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(name))
	for m := ModeSSB; m <= ModeDIGI; m++ {
		if modeNames[m] == cleaned {
			return m, nil
		}
	}
	return 0, &ValidationError{Field: FieldMode, Value: name, Err: ErrInvalidMode}
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &ValidationError{Field: FieldMode, Err: ErrInvalidMode}
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
