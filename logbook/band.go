package logbook

import (
	"strings"
)

// Band is one of the fixed amateur bands a contact can be logged on.
type Band uint8

const (
	Band160M Band = iota + 1
	Band80M
	Band60M
	Band40M
	Band30M
	Band20M
	Band17M
	Band15M
	Band12M
	Band10M
	Band6M
	Band2M
	Band70CM
)

// bandInfo describes a band by ADIF name and frequency range in kHz.
type bandInfo struct {
	band   Band
	name   string
	legacy string
	min    float64
	max    float64
}

var bandTable = []bandInfo{
	{Band160M, "160M", "M160", 1800, 2000},
	{Band80M, "80M", "M80", 3500, 4000},
	{Band60M, "60M", "M60", 5330, 5405},
	{Band40M, "40M", "M40", 7000, 7300},
	{Band30M, "30M", "M30", 10100, 10150},
	{Band20M, "20M", "M20", 14000, 14350},
	{Band17M, "17M", "M17", 18068, 18168},
	{Band15M, "15M", "M15", 21000, 21450},
	{Band12M, "12M", "M12", 24890, 24990},
	{Band10M, "10M", "M10", 28000, 29700},
	{Band6M, "6M", "M6", 50000, 54000},
	{Band2M, "2M", "M2", 144000, 148000},
	{Band70CM, "70CM", "CM70", 420000, 450000},
}

var bandLookup = func() map[string]Band {
	m := make(map[string]Band, 2*len(bandTable))
	for _, entry := range bandTable {
		m[entry.name] = entry.band
		m[entry.legacy] = entry.band
	}
	return m
}()

// Bands returns all bands in wavelength order, longest first.
func Bands() []Band {
	out := make([]Band, len(bandTable))
	for i, entry := range bandTable {
		out[i] = entry.band
	}
	return out
}

func (b Band) info() (bandInfo, bool) {
	if b < Band160M || b > Band70CM {
		return bandInfo{}, false
	}
	return bandTable[b-1], true
}

// Valid reports whether b is one of the known bands.
func (b Band) Valid() bool {
	_, ok := b.info()
	return ok
}

// String returns the ADIF band name (e.g. "20M").
func (b Band) String() string {
	if info, ok := b.info(); ok {
		return info.name
	}
	return ""
}

// ParseBand resolves a band label. It accepts ADIF names in any case
// ("20m", "70CM"), the same names spelled with "meters", and the enum
// identifiers used by older log files ("M20", "Cm70").
func ParseBand(label string) (Band, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(label))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	for _, pair := range []struct{ old, new string }{
		{"METERS", "M"},
		{"METER", "M"},
		{"CENTIMETERS", "CM"},
		{"CENTIMETER", "CM"},
	} {
		cleaned = strings.ReplaceAll(cleaned, pair.old, pair.new)
	}
	if b, ok := bandLookup[cleaned]; ok {
		return b, nil
	}
	return 0, &ValidationError{Field: FieldBand, Value: label, Err: ErrInvalidBand}
}

// BandForFrequency maps a frequency in kHz to its band.
func BandForFrequency(khz float64) (Band, bool) {
	for _, entry := range bandTable {
		if khz >= entry.min && khz <= entry.max {
			return entry.band, true
		}
	}
	return 0, false
}

func (b Band) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &ValidationError{Field: FieldBand, Err: ErrInvalidBand}
	}
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
