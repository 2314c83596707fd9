// Package archive mirrors every saved contact into a single SQLite database
// so a callsign can be looked up across all logs ("worked before"). The JSONL
// log files stay authoritative; the archive can be deleted and rebuilt with
// Sync at any time.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hamlog/logbook"
	"hamlog/sqliteutil"
	"hamlog/strutil"

	_ "modernc.org/sqlite"
)

const preflightTimeout = 2 * time.Second

// Contact is one archived QSO together with the log it belongs to.
type Contact struct {
	LogID           string
	Kind            logbook.Kind
	StationCallsign string
	TheirCall       string
	Band            logbook.Band
	Mode            logbook.Mode
	Time            time.Time
	TheirPark       string
}

// Archive is a handle on the SQLite mirror.
type Archive struct {
	path string
	db   *sql.DB
}

// Open prepares the database at path. An existing file that fails the
// integrity check is quarantined and replaced by an empty archive.
func Open(path string, logf func(string, ...any)) (*Archive, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("archive: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("archive: mkdir: %w", err)
	}
	if _, err := sqliteutil.Preflight(path, preflightTimeout, logf); err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`pragma journal_mode=WAL; pragma synchronous=NORMAL; pragma busy_timeout=2000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: pragmas: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Archive{path: path, db: db}, nil
}

// Path returns the database file.
func (a *Archive) Path() string { return a.path }

// Close releases the database.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func ensureSchema(db *sql.DB) error {
	schema := `
	create table if not exists qsos (
		log_id text not null,
		seq integer not null,
		log_kind text not null,
		station_callsign text not null,
		call text not null,
		band text not null,
		mode text not null,
		ts integer not null,
		their_park text not null default '',
		primary key (log_id, seq)
	);
	create index if not exists idx_qsos_call_ts on qsos(call, ts);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("archive: schema: %w", err)
	}
	return nil
}

// Sync replaces the archived contacts of l with its current QSO sequence.
func (a *Archive) Sync(l logbook.Log) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("archive: begin tx: %w", err)
	}
	if _, err := tx.Exec(`delete from qsos where log_id = ?`, l.LogID()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("archive: clear %s: %w", l.LogID(), err)
	}
	stmt, err := tx.Prepare(`insert into qsos(log_id, seq, log_kind, station_callsign, call, band, mode, ts, their_park) values(?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("archive: prepare: %w", err)
	}
	for i, q := range l.QSOs() {
		// Park-to-park references only mean something on park logs.
		theirPark := ""
		if l.Kind() == logbook.KindPark {
			theirPark = q.TheirPark()
		}
		if _, err := stmt.Exec(
			l.LogID(),
			i,
			l.Kind().String(),
			l.StationCallsign(),
			q.TheirCall(),
			q.Band().String(),
			q.Mode().String(),
			q.Timestamp().UTC().Unix(),
			theirPark,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("archive: insert: %w", err)
		}
	}
	_ = stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("archive: commit: %w", err)
	}
	return nil
}

// Remove drops every archived contact of logID.
func (a *Archive) Remove(logID string) error {
	if _, err := a.db.Exec(`delete from qsos where log_id = ?`, logID); err != nil {
		return fmt.Errorf("archive: remove %s: %w", logID, err)
	}
	return nil
}

// Count returns the number of archived contacts.
func (a *Archive) Count() (int64, error) {
	var n int64
	if err := a.db.QueryRow(`select count(*) from qsos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("archive: count: %w", err)
	}
	return n, nil
}

// WorkedBefore returns up to limit earlier contacts with call across all
// logs, newest first.
func (a *Archive) WorkedBefore(call string, limit int) ([]Contact, error) {
	call = strutil.NormalizeUpper(call)
	if call == "" || limit <= 0 {
		return []Contact{}, nil
	}
	rows, err := a.db.Query(`select log_id, log_kind, station_callsign, call, band, mode, ts, their_park from qsos where call = ? order by ts desc, log_id, seq limit ?`, call, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: query worked before: %w", err)
	}
	defer rows.Close()

	results := make([]Contact, 0, limit)
	for rows.Next() {
		var (
			c         Contact
			kind      string
			band      string
			mode      string
			ts        int64
			theirPark string
		)
		if err := rows.Scan(&c.LogID, &kind, &c.StationCallsign, &c.TheirCall, &band, &mode, &ts, &theirPark); err != nil {
			return nil, fmt.Errorf("archive: scan: %w", err)
		}
		if c.Kind, err = logbook.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		if c.Band, err = logbook.ParseBand(band); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		if c.Mode, err = logbook.ParseMode(mode); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		c.Time = time.Unix(ts, 0).UTC()
		c.TheirPark = theirPark
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: iterate: %w", err)
	}
	return results, nil
}

// Rebuild clears the archive and syncs every log in logs.
func (a *Archive) Rebuild(logs []logbook.Log) error {
	if _, err := a.db.Exec(`delete from qsos`); err != nil {
		return fmt.Errorf("archive: clear: %w", err)
	}
	for _, l := range logs {
		if err := a.Sync(l); err != nil {
			return err
		}
	}
	return nil
}

// DropDB removes the archive database file and its WAL sidecars; the next
// Open starts empty. A missing file is not an error.
func DropDB(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("archive: empty path")
	}
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("archive: remove %s: %w", p, err)
		}
	}
	return nil
}
