// Package store persists logs as JSON Lines files, one file per log. The
// first line holds the log metadata and every following line one contact, so
// a new contact is a single append rather than a rewrite.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"hamlog/logbook"
	"hamlog/strutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fileExt     = ".jsonl"
	maxLineSize = 1 << 20
)

var (
	ErrEmptyLogFile       = errors.New("log file is empty")
	ErrCorruptRecord      = errors.New("corrupt log record")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrLogNotFound        = errors.New("log not found")
)

// RecordError reports a stored log that could not be decoded or failed
// validation. Line is 1-based; 0 means the file as a whole.
type RecordError struct {
	Path string
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("store: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("store: %s: %v", e.Path, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func (e *RecordError) Is(target error) bool { return target == ErrCorruptRecord }

// Store owns a directory of log files.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file for logID. Path separators in the id (portable
// callsigns such as W1AW/P) are replaced so the file stays inside the store.
func (s *Store) Path(logID string) string {
	return filepath.Join(s.dir, strutil.SafeFileComponent(logID)+fileExt)
}

// Save writes the whole log, replacing any previous file for its id.
func (s *Store) Save(l logbook.Log) error {
	snap := logbook.SnapshotOf(l)
	var buf bytes.Buffer
	if err := writeLine(&buf, metadataFromSnapshot(snap)); err != nil {
		return err
	}
	for _, p := range snap.QSOs {
		if err := writeLine(&buf, qsoRecordFrom(p)); err != nil {
			return err
		}
	}
	return writeFileAtomic(s.Path(snap.LogID), buf.Bytes())
}

// Create saves a newly constructed log after checking it against every log
// already stored. It returns a *logbook.DuplicateLogError when the guard
// rejects it. Unreadable files are skipped for the check.
func (s *Store) Create(l logbook.Log) error {
	existing, err := s.LoadAll()
	if err != nil && existing == nil {
		return err
	}
	if _, statErr := os.Stat(s.Path(l.LogID())); statErr == nil {
		return fmt.Errorf("store: log %s already exists: %w", l.LogID(), logbook.ErrDuplicateLog)
	}
	if err := logbook.CheckDuplicateLog(existing, l); err != nil {
		return err
	}
	return s.Save(l)
}

// AppendQSO adds one contact to the end of an existing log file.
func (s *Store) AppendQSO(logID string, q logbook.QSO) error {
	path := s.Path(logID)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store: %s: %w", logID, ErrLogNotFound)
		}
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := writeLine(&buf, qsoRecordFrom(q.Params())); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: append %s: %w", path, err)
	}
	return f.Close()
}

// Load reads and revalidates a single log.
func (s *Store) Load(logID string) (logbook.Log, error) {
	path := s.Path(logID)
	l, err := loadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store: %s: %w", logID, ErrLogNotFound)
	}
	return l, err
}

// LoadAll returns every readable log, newest first. Files that fail to load
// are reported together in the returned error while the remaining logs are
// still returned; decode and validation failures are *RecordError values.
func (s *Store) LoadAll() ([]logbook.Log, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: read dir: %w", err)
	}
	logs := make([]logbook.Log, 0, len(entries))
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		l, err := loadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logs = append(logs, l)
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt().After(logs[j].CreatedAt())
	})
	return logs, errors.Join(errs...)
}

// Delete removes the log file.
func (s *Store) Delete(logID string) error {
	if err := os.Remove(s.Path(logID)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store: %s: %w", logID, ErrLogNotFound)
		}
		return fmt.Errorf("store: delete %s: %w", logID, err)
	}
	return nil
}

func loadFile(path string) (logbook.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		meta     metadataRecord
		haveMeta bool
		qsos     []logbook.QSOParams
		line     int
	)
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if !haveMeta {
			if err := json.Unmarshal(raw, &meta); err != nil {
				return nil, &RecordError{Path: path, Line: line, Err: err}
			}
			haveMeta = true
			continue
		}
		var rec qsoRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &RecordError{Path: path, Line: line, Err: err}
		}
		q, err := rec.qso()
		if err != nil {
			return nil, &RecordError{Path: path, Line: line, Err: err}
		}
		qsos = append(qsos, q.Params())
	}
	if err := scanner.Err(); err != nil {
		return nil, &RecordError{Path: path, Err: err}
	}
	if !haveMeta {
		return nil, &RecordError{Path: path, Err: ErrEmptyLogFile}
	}

	snap, err := meta.snapshot()
	if err != nil {
		return nil, &RecordError{Path: path, Line: 1, Err: err}
	}
	snap.QSOs = qsos
	l, err := logbook.FromSnapshot(snap)
	if err != nil {
		return nil, &RecordError{Path: path, Line: 1, Err: err}
	}
	return l, nil
}

func writeLine(buf *bytes.Buffer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	buf.Write(raw)
	buf.WriteByte('\n')
	return nil
}

// writeFileAtomic replaces path through a temp file in the same directory so
// a failed write never leaves a truncated log behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}
