// Package adif renders logs in the ADIF interchange format accepted by
// log-aggregation services. Formatting is pure; Export is the only function
// that touches the filesystem.
package adif

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hamlog/logbook"
	"hamlog/strutil"
)

const (
	// Version is the ADIF specification version written in every header.
	Version   = "3.1.6"
	ProgramID = "hamlog"

	parkProgram = "POTA"

	// Contest identifiers from the ADIF Contest_ID enumeration.
	fieldDayContestID       = "ARRL-FIELD-DAY"
	winterFieldDayContestID = "WFD"

	timestampLayout = "20060102 150405"
	dateLayout      = "20060102"
	timeLayout      = "150405"
)

// ProgramVersion is written as PROGRAMVERSION; main sets it from the build.
var ProgramVersion = "dev"

// FormatField renders <NAME:len>value where len is the UTF-8 byte length of
// value.
func FormatField(name, value string) string {
	return "<" + name + ":" + strconv.Itoa(len(value)) + ">" + value
}

// FormatHeader renders the file header stamped with exportedAt (UTC),
// terminated by <eoh>.
func FormatHeader(exportedAt time.Time) string {
	var b strings.Builder
	b.WriteString(FormatField("ADIF_VER", Version))
	b.WriteByte('\n')
	b.WriteString(FormatField("PROGRAMID", ProgramID))
	b.WriteByte('\n')
	b.WriteString(FormatField("PROGRAMVERSION", ProgramVersion))
	b.WriteByte('\n')
	b.WriteString(FormatField("CREATED_TIMESTAMP", exportedAt.UTC().Format(timestampLayout)))
	b.WriteByte('\n')
	b.WriteString("<eoh>\n")
	return b.String()
}

// FormatQSO renders one record terminated by <eor>.
//
// Key aspects:
//   - Core fields are always present, in a fixed order.
//   - OPERATOR only when set and different from the station callsign.
//   - Park fields only for park logs with a park reference; SIG/SIG_INFO only
//     when the contact is park-to-park.
//   - Contest fields only for the two contest variants.
//   - Variant-specific QSO data is ignored by every other variant.
func FormatQSO(l logbook.Log, q logbook.QSO) string {
	var b strings.Builder
	field := func(name, value string) { b.WriteString(FormatField(name, value)) }

	field("STATION_CALLSIGN", l.StationCallsign())
	if op := l.Operator(); op != "" && !strutil.EqualFold(op, l.StationCallsign()) {
		field("OPERATOR", op)
	}
	field("CALL", q.TheirCall())
	ts := q.Timestamp().UTC()
	field("QSO_DATE", ts.Format(dateLayout))
	field("TIME_ON", ts.Format(timeLayout))
	field("BAND", q.Band().String())
	field("MODE", q.Mode().String())
	if q.HasFrequency() {
		field("FREQ", formatMHz(q.FrequencyKHz()))
	}
	field("RST_SENT", q.RSTSent())
	field("RST_RCVD", q.RSTRcvd())
	field("MY_GRIDSQUARE", l.GridSquare())

	switch v := l.(type) {
	case *logbook.ParkLog:
		if ref := v.ParkRef(); ref != "" {
			field("MY_SIG", parkProgram)
			field("MY_SIG_INFO", ref)
			if q.IsParkToPark() {
				field("SIG", parkProgram)
				field("SIG_INFO", q.TheirPark())
			}
		}
	case *logbook.FieldContestLog:
		writeContestFields(field, fieldDayContestID, v.SentExchange(), q)
	case *logbook.WinterContestLog:
		writeContestFields(field, winterFieldDayContestID, v.SentExchange(), q)
	case *logbook.GeneralLog:
	}

	if c := q.Comment(); c != "" {
		field("COMMENT", c)
	}
	b.WriteString("<eor>\n")
	return b.String()
}

func writeContestFields(field func(name, value string), contestID, sent string, q logbook.QSO) {
	field("CONTEST_ID", contestID)
	field("STX_STRING", sent)
	if rcvd := q.ExchangeRcvd(); rcvd != "" {
		field("SRX_STRING", rcvd)
	}
}

// formatMHz renders a kHz value (already on a 100 Hz grid) as MHz with four
// decimals, e.g. 14074 -> "14.0740".
func formatMHz(khz float64) string {
	hundredHz := int64(math.Round(khz * 10))
	return fmt.Sprintf("%d.%04d", hundredHz/10000, hundredHz%10000)
}

// FormatLog renders the header followed by every QSO in logging order.
func FormatLog(l logbook.Log, exportedAt time.Time) string {
	var b strings.Builder
	b.WriteString(FormatHeader(exportedAt))
	for _, q := range l.QSOs() {
		b.WriteString(FormatQSO(l, q))
	}
	return b.String()
}

// DefaultExportFilename is hamlog-{PARK|CALLSIGN}-{YYYYMMDD}.adi, dated by
// the export day. Contest and general logs use the station callsign.
func DefaultExportFilename(l logbook.Log, exportedAt time.Time) string {
	prefix := l.StationCallsign()
	if p, ok := l.(*logbook.ParkLog); ok && p.ParkRef() != "" {
		prefix = p.ParkRef()
	}
	return fmt.Sprintf("%s-%s-%s.adi", ProgramID, strutil.SafeFileComponent(prefix), exportedAt.UTC().Format(dateLayout))
}

// Export writes the log to path, creating parent directories as needed.
func Export(l logbook.Log, path string, exportedAt time.Time) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("adif: create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(FormatLog(l, exportedAt)), 0o644); err != nil {
		return fmt.Errorf("adif: write %s: %w", path, err)
	}
	return nil
}
