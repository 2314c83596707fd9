package store

import (
	"fmt"
	"strings"
	"time"

	"hamlog/logbook"
)

// formatVersion is written into every metadata line. Version 1 files predate
// the log_type discriminant; they carry neither field.
const formatVersion = 2

// legacyKind is the variant assumed for files written before log_type
// existed. Those files could only hold park activations, so they keep loading
// as park logs.
const legacyKind = logbook.KindPark

// legacyKindNames maps the capitalized discriminants of version 1 files,
// which predate the contest variants. Keys are lower case.
var legacyKindNames = map[string]logbook.Kind{
	"pota":    logbook.KindPark,
	"general": logbook.KindGeneral,
}

// parseLogType resolves a stored discriminant. Current names win; the legacy
// spellings are matched case-insensitively.
func parseLogType(name string) (logbook.Kind, error) {
	if name == "" {
		return legacyKind, nil
	}
	k, err := logbook.ParseKind(name)
	if err == nil {
		return k, nil
	}
	if legacy, ok := legacyKindNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return legacy, nil
	}
	return 0, err
}

// metadataRecord is the first line of a log file.
type metadataRecord struct {
	FormatVersion   int       `json:"format_version,omitempty"`
	LogType         string    `json:"log_type,omitempty"`
	LogID           string    `json:"log_id"`
	StationCallsign string    `json:"station_callsign"`
	Operator        string    `json:"operator,omitempty"`
	GridSquare      string    `json:"grid_square"`
	CreatedAt       time.Time `json:"created_at"`
	ParkRef         string    `json:"park_ref,omitempty"`
	TxCount         int       `json:"tx_count,omitempty"`
	Class           string    `json:"class,omitempty"`
	Section         string    `json:"section,omitempty"`
	Power           string    `json:"power,omitempty"`
}

// qsoRecord is one contact line. Band and mode are stored by ADIF name; the
// legacy enum spellings are accepted on load.
type qsoRecord struct {
	TheirCall    string    `json:"their_call"`
	RSTSent      string    `json:"rst_sent"`
	RSTRcvd      string    `json:"rst_rcvd"`
	Band         string    `json:"band"`
	Mode         string    `json:"mode"`
	Timestamp    time.Time `json:"timestamp"`
	Comment      string    `json:"comment,omitempty"`
	LegacyNotes  string    `json:"comments,omitempty"`
	TheirPark    string    `json:"their_park,omitempty"`
	ExchangeRcvd string    `json:"exchange_rcvd,omitempty"`
	FrequencyKHz float64   `json:"frequency_khz,omitempty"`
}

func metadataFromSnapshot(snap logbook.Snapshot) metadataRecord {
	rec := metadataRecord{
		FormatVersion:   formatVersion,
		LogType:         snap.Kind.String(),
		LogID:           snap.LogID,
		StationCallsign: snap.Station.Callsign,
		Operator:        snap.Station.Operator,
		GridSquare:      snap.Station.GridSquare,
		CreatedAt:       snap.CreatedAt.UTC(),
	}
	switch snap.Kind {
	case logbook.KindPark:
		rec.ParkRef = snap.ParkRef
	case logbook.KindFieldContest:
		rec.TxCount = snap.FieldContest.TxCount
		rec.Class = string(snap.FieldContest.Class)
		rec.Section = snap.FieldContest.Section
		rec.Power = string(snap.FieldContest.Power)
	case logbook.KindWinterContest:
		rec.TxCount = snap.WinterContest.TxCount
		rec.Class = string(snap.WinterContest.Class)
		rec.Section = snap.WinterContest.Section
	case logbook.KindGeneral:
	}
	return rec
}

// snapshot maps the stored metadata onto a logbook.Snapshot. Only the fields
// belonging to the resolved variant are carried over.
func (m metadataRecord) snapshot() (logbook.Snapshot, error) {
	if m.FormatVersion > formatVersion {
		return logbook.Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.FormatVersion)
	}
	kind, err := parseLogType(m.LogType)
	if err != nil {
		return logbook.Snapshot{}, err
	}
	snap := logbook.Snapshot{
		Kind:  kind,
		LogID: m.LogID,
		Station: logbook.Station{
			Callsign:   m.StationCallsign,
			Operator:   m.Operator,
			GridSquare: m.GridSquare,
		},
		CreatedAt: m.CreatedAt,
	}
	switch kind {
	case logbook.KindPark:
		snap.ParkRef = m.ParkRef
	case logbook.KindFieldContest:
		snap.FieldContest = logbook.FieldContestSetup{
			TxCount: m.TxCount,
			Class:   logbook.FieldClass(m.Class),
			Section: m.Section,
			Power:   logbook.PowerCategory(m.Power),
		}
	case logbook.KindWinterContest:
		snap.WinterContest = logbook.WinterContestSetup{
			TxCount: m.TxCount,
			Class:   logbook.WinterClass(m.Class),
			Section: m.Section,
		}
	case logbook.KindGeneral:
	}
	return snap, nil
}

func qsoRecordFrom(p logbook.QSOParams) qsoRecord {
	return qsoRecord{
		TheirCall:    p.TheirCall,
		RSTSent:      p.RSTSent,
		RSTRcvd:      p.RSTRcvd,
		Band:         p.Band.String(),
		Mode:         p.Mode.String(),
		Timestamp:    p.Timestamp.UTC(),
		Comment:      p.Comment,
		TheirPark:    p.TheirPark,
		ExchangeRcvd: p.ExchangeRcvd,
		FrequencyKHz: p.FrequencyKHz,
	}
}

// qso validates the stored contact through logbook.NewQSO.
func (r qsoRecord) qso() (logbook.QSO, error) {
	band, err := logbook.ParseBand(r.Band)
	if err != nil {
		return logbook.QSO{}, err
	}
	mode, err := logbook.ParseMode(r.Mode)
	if err != nil {
		return logbook.QSO{}, err
	}
	comment := r.Comment
	if comment == "" {
		comment = r.LegacyNotes
	}
	return logbook.NewQSO(logbook.QSOParams{
		TheirCall:    r.TheirCall,
		RSTSent:      r.RSTSent,
		RSTRcvd:      r.RSTRcvd,
		Band:         band,
		Mode:         mode,
		Timestamp:    r.Timestamp,
		Comment:      comment,
		TheirPark:    r.TheirPark,
		ExchangeRcvd: r.ExchangeRcvd,
		FrequencyKHz: r.FrequencyKHz,
	})
}
