package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hamlog/logbook"
	"hamlog/store"
)

type cliEnv struct {
	t       *testing.T
	config  string
	dataDir string
	outDir  string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	env := &cliEnv{
		t:       t,
		config:  filepath.Join(root, "hamlog.yaml"),
		dataDir: filepath.Join(root, "logs"),
		outDir:  filepath.Join(root, "exports"),
	}
	raw := fmt.Sprintf(`station:
  callsign: W1AW
  grid_square: FN31pr
export:
  dir: %q
archive:
  enabled: true
  db_path: %q
dupes:
  similar_call_distance: 1
`, env.outDir, filepath.Join(root, "archive.db"))
	if err := os.WriteFile(env.config, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	var out bytes.Buffer
	full := append([]string{"hamlog", "--config", e.config, "--data-dir", e.dataDir}, args...)
	err := newRootCommand(&out).Run(context.Background(), full)
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("hamlog %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func (e *cliEnv) onlyLog() logbook.Log {
	e.t.Helper()
	st, err := store.Open(e.dataDir)
	if err != nil {
		e.t.Fatalf("store.Open: %v", err)
	}
	logs, err := st.LoadAll()
	if err != nil {
		e.t.Fatalf("LoadAll: %v", err)
	}
	if len(logs) != 1 {
		e.t.Fatalf("expected one stored log, got %d", len(logs))
	}
	return logs[0]
}

func TestParkActivationWorkflow(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("new", "park", "k-1234")
	if !strings.Contains(out, "Created park log K-1234-") {
		t.Fatalf("unexpected create output %q", out)
	}
	id := env.onlyLog().LogID()

	out = env.mustRun("add", "--band", "20m", "--mode", "CW", id, "kd9xyz")
	if !strings.Contains(out, "Logged KD9XYZ (#0)") || !strings.Contains(out, "9 more to activate") {
		t.Fatalf("unexpected add output %q", out)
	}
	out = env.mustRun("add", "--band", "20m", "--mode", "CW", id, "KD9XYZ")
	if !strings.Contains(out, "DUPE: KD9XYZ") {
		t.Fatalf("expected duplicate warning, got %q", out)
	}
	if !strings.Contains(out, "9 more to activate") {
		t.Fatalf("repeat contact advanced activation: %q", out)
	}
	out = env.mustRun("add", "--band", "20m", "--mode", "CW", id, "KD9XYY")
	if !strings.Contains(out, "check call: KD9XYY is close to KD9XYZ") {
		t.Fatalf("expected similar-call hint, got %q", out)
	}

	l := env.onlyLog()
	if l.Len() != 3 {
		t.Fatalf("expected 3 stored QSOs, got %d", l.Len())
	}
	if q, _ := l.QSO(0); q.RSTSent() != "599" {
		t.Fatalf("CW default report not applied: %q", q.RSTSent())
	}

	out = env.mustRun("status", id)
	if !strings.Contains(out, "Today: 2 unique contacts, 8 more to activate") {
		t.Fatalf("unexpected status %q", out)
	}

	out = env.mustRun("worked", "kd9xyz")
	if got := strings.Count(out, id); got != 2 {
		t.Fatalf("expected 2 archived contacts, got %d in %q", got, out)
	}

	out = env.mustRun("export", id)
	matches, _ := filepath.Glob(filepath.Join(env.outDir, "hamlog-K-1234-*.adi"))
	if len(matches) != 1 {
		t.Fatalf("expected one export file, got %v (%s)", matches, out)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got := strings.Count(string(data), "<eor>"); got != 3 {
		t.Fatalf("expected 3 records, got %d", got)
	}
	if !strings.Contains(string(data), "<MY_SIG_INFO:6>K-1234") {
		t.Fatalf("export missing park reference:\n%s", data)
	}

	_, err = env.run("new", "park", "K-1234")
	if !errors.Is(err, logbook.ErrDuplicateLog) {
		t.Fatalf("expected duplicate log error, got %v", err)
	}

	env.mustRun("delete", id)
	out = env.mustRun("worked", "KD9XYZ")
	if !strings.Contains(out, "not worked before") {
		t.Fatalf("archive not cleaned on delete: %q", out)
	}
	if _, err := env.run("show", id); !isNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestFieldDayLogAndEdit(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("new", "fd", "--tx", "3", "--class", "a", "--section", "epa", "--power", "qrp")
	id := env.onlyLog().LogID()
	if !strings.HasPrefix(id, "FD-W1AW-") {
		t.Fatalf("unexpected field day id %q", id)
	}

	env.mustRun("add", "--freq", "7040.04", "--mode", "CW", "--exchange", "2a wma", id, "K1ABC")
	l := env.onlyLog()
	q, _ := l.QSO(0)
	if q.Band() != logbook.Band40M || q.FrequencyKHz() != 7040.0 || q.ExchangeRcvd() != "2A WMA" {
		t.Fatalf("unexpected stored QSO %+v", q.Params())
	}

	out := env.mustRun("edit", "--call", "K1ABD", "--comment", "fixed", id, "0")
	if !strings.Contains(out, "Updated #0") {
		t.Fatalf("unexpected edit output %q", out)
	}
	q, _ = env.onlyLog().QSO(0)
	if q.TheirCall() != "K1ABD" || q.Comment() != "fixed" || q.Mode() != logbook.ModeCW || q.ExchangeRcvd() != "2A WMA" {
		t.Fatalf("edit did not keep untouched fields: %+v", q.Params())
	}

	if _, err := env.run("edit", "--call", "K1ABE", id, "5"); !errors.Is(err, logbook.ErrQSOIndexOutOfRange) {
		t.Fatalf("expected index error, got %v", err)
	}

	out = env.mustRun("show", id)
	if !strings.Contains(out, "Exchange: 3A EPA QRP") || !strings.Contains(out, "rcvd 2A WMA") {
		t.Fatalf("unexpected show output %q", out)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("new", "park", "--call", "not a call", "K-1234")
	var verr *logbook.ValidationError
	if !errors.As(err, &verr) || verr.Field != logbook.FieldStationCallsign {
		t.Fatalf("expected callsign validation error, got %v", err)
	}
	if _, err := env.run("new", "park"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if _, err := env.run("add", "--band", "20m", "NOPE-20260101-000000", "K1ABC"); !isNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDupesCommand(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("new", "general")
	id := env.onlyLog().LogID()
	env.mustRun("add", "--band", "40m", "--mode", "FT8", id, "JA1XYZ")

	out := env.mustRun("dupes", "--band", "40m", "--mode", "ft8", id, "ja1xyz")
	if !strings.Contains(out, "JA1XYZ on 40M FT8: DUPE (1)") {
		t.Fatalf("expected dupe, got %q", out)
	}
	out = env.mustRun("dupes", "--band", "20m", "--mode", "FT8", id, "JA1XYZ")
	if !strings.Contains(out, ": new") {
		t.Fatalf("other band should not be a dupe, got %q", out)
	}
}

func TestArchiveRebuildFresh(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("new", "general")
	id := env.onlyLog().LogID()
	env.mustRun("add", "--band", "40m", "--mode", "CW", id, "K1ABC")
	env.mustRun("add", "--band", "20m", "--mode", "CW", id, "K2ABC")

	for _, args := range [][]string{{"archive", "rebuild", "--fresh"}, {"archive", "rebuild"}} {
		out := env.mustRun(args...)
		if !strings.Contains(out, "Archived 2 contacts from 1 logs") {
			t.Fatalf("%s: unexpected output %q", strings.Join(args, " "), out)
		}
	}
	out := env.mustRun("worked", "K2ABC")
	if !strings.Contains(out, id) {
		t.Fatalf("rebuilt archive missing contact: %q", out)
	}
}

func TestParseWhen(t *testing.T) {
	want := time.Date(2026, 2, 16, 14, 30, 0, 0, time.UTC)
	for _, in := range []string{"2026-02-16T14:30:00Z", "2026-02-16 14:30", "2026-02-16T09:30:00-05:00", "2026-02-16 14:30:00"} {
		got, err := parseWhen(in)
		if err != nil {
			t.Fatalf("parseWhen(%q): %v", in, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("parseWhen(%q) = %s", in, got)
		}
	}
	if _, err := parseWhen("yesterday"); err == nil {
		t.Fatalf("expected error for free text")
	}
}

func TestResolveBand(t *testing.T) {
	if b, err := resolveBand("M20", 0); err != nil || b != logbook.Band20M {
		t.Fatalf("legacy label: %v, %v", b, err)
	}
	if b, err := resolveBand("", 14074); err != nil || b != logbook.Band20M {
		t.Fatalf("from frequency: %v, %v", b, err)
	}
	if _, err := resolveBand("", 12000); err == nil {
		t.Fatalf("expected out-of-band error")
	}
	if _, err := resolveBand("", 0); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestHintFor(t *testing.T) {
	if hintFor(fmt.Errorf("x: %w", store.ErrLogNotFound)) == "" {
		t.Fatalf("expected hint for missing log")
	}
	if hintFor(errors.New("boom")) != "" {
		t.Fatalf("unexpected hint for unrelated error")
	}
}
