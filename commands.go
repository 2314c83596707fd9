package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pd0mz/go-maidenhead"
	"github.com/urfave/cli/v3"

	"hamlog/adif"
	"hamlog/archive"
	"hamlog/logbook"
	"hamlog/store"
)

const defaultWorkedLimit = 20

var errUsage = errors.New("usage")

// wallClock is replaced in tests.
var wallClock = func() time.Time { return time.Now().UTC() }

func stationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "call", Usage: "station callsign (defaults to station.callsign)"},
		&cli.StringFlag{Name: "operator", Usage: "operator callsign when different from the station"},
		&cli.StringFlag{Name: "grid", Usage: "station grid square (defaults to station.grid_square)"},
	}
}

func contestFlags(withPower bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "tx", Usage: "number of transmitters", Value: 1},
		&cli.StringFlag{Name: "class", Usage: "operating class letter"},
		&cli.StringFlag{Name: "section", Usage: "ARRL/RAC section"},
	}
	if withPower {
		flags = append(flags, &cli.StringFlag{Name: "power", Usage: "QRP, LOW or HIGH", Value: string(logbook.PowerLow)})
	}
	return flags
}

func qsoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "band", Usage: "band, e.g. 20m (derived from --freq when omitted)"},
		&cli.StringFlag{Name: "mode", Usage: "mode, e.g. SSB", Value: logbook.ModeSSB.String()},
		&cli.StringFlag{Name: "rst-sent", Usage: "report sent (defaults to the mode's usual report)"},
		&cli.StringFlag{Name: "rst-rcvd", Usage: "report received (defaults to the mode's usual report)"},
		&cli.FloatFlag{Name: "freq", Usage: "frequency in kHz"},
		&cli.StringFlag{Name: "park", Usage: "the other station's park reference"},
		&cli.StringFlag{Name: "exchange", Usage: "received contest exchange"},
		&cli.StringFlag{Name: "comment", Usage: "free-form note"},
		&cli.StringFlag{Name: "time", Usage: "contact time in UTC, RFC 3339 or \"2006-01-02 15:04\" (defaults to now)"},
	}
}

func (a *app) newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Start a new log",
		Commands: []*cli.Command{
			{
				Name:   "general",
				Usage:  "General operating log",
				Flags:  stationFlags(),
				Action: a.newGeneral,
			},
			{
				Name:      "park",
				Usage:     "Park activation log",
				ArgsUsage: "<park-ref>",
				Flags:     stationFlags(),
				Action:    a.newPark,
			},
			{
				Name:   "fd",
				Usage:  "Field Day log",
				Flags:  append(stationFlags(), contestFlags(true)...),
				Action: a.newFieldContest,
			},
			{
				Name:   "wfd",
				Usage:  "Winter Field Day log",
				Flags:  append(stationFlags(), contestFlags(false)...),
				Action: a.newWinterContest,
			},
		},
	}
}

func (a *app) station(cmd *cli.Command) logbook.Station {
	st := logbook.Station{
		Callsign:   a.cfg.Station.Callsign,
		Operator:   a.cfg.Station.Operator,
		GridSquare: a.cfg.Station.GridSquare,
	}
	if cmd.IsSet("call") {
		st.Callsign = cmd.String("call")
		// A different station callsign does not inherit the configured operator.
		st.Operator = ""
	}
	if cmd.IsSet("operator") {
		st.Operator = cmd.String("operator")
	}
	if cmd.IsSet("grid") {
		st.GridSquare = cmd.String("grid")
	}
	return st
}

func (a *app) newGeneral(ctx context.Context, cmd *cli.Command) error {
	l, err := logbook.NewGeneralLog(a.station(cmd))
	if err != nil {
		return err
	}
	return a.create(l)
}

func (a *app) newPark(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: hamlog new park <park-ref>", errUsage)
	}
	l, err := logbook.NewParkLog(a.station(cmd), cmd.Args().First())
	if err != nil {
		return err
	}
	return a.create(l)
}

func (a *app) newFieldContest(ctx context.Context, cmd *cli.Command) error {
	class, err := logbook.ParseFieldClass(cmd.String("class"))
	if err != nil {
		return err
	}
	power, err := logbook.ParsePowerCategory(cmd.String("power"))
	if err != nil {
		return err
	}
	l, err := logbook.NewFieldContestLog(a.station(cmd), logbook.FieldContestSetup{
		TxCount: int(cmd.Int("tx")),
		Class:   class,
		Section: cmd.String("section"),
		Power:   power,
	})
	if err != nil {
		return err
	}
	return a.create(l)
}

func (a *app) newWinterContest(ctx context.Context, cmd *cli.Command) error {
	class, err := logbook.ParseWinterClass(cmd.String("class"))
	if err != nil {
		return err
	}
	l, err := logbook.NewWinterContestLog(a.station(cmd), logbook.WinterContestSetup{
		TxCount: int(cmd.Int("tx")),
		Class:   class,
		Section: cmd.String("section"),
	})
	if err != nil {
		return err
	}
	return a.create(l)
}

func (a *app) create(l logbook.Log) error {
	if err := a.store.Create(l); err != nil {
		var dupErr *logbook.DuplicateLogError
		if errors.As(err, &dupErr) {
			return fmt.Errorf("%w; continue it with: hamlog add %s <call>", err, dupErr.ExistingID)
		}
		return err
	}
	a.log(sourceStore).Info("created log", "log_id", l.LogID(), "kind", l.Kind())
	a.syncArchive(l)
	fmt.Fprintf(a.out, "Created %s log %s\n", l.Kind(), l.LogID())
	return nil
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List saved logs, newest first",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logs, err := a.store.LoadAll()
			if err != nil {
				if logs == nil {
					return err
				}
				a.log(sourceStore).Warn("some logs could not be read", "err", err)
			}
			if len(logs) == 0 {
				fmt.Fprintln(a.out, "No logs yet.")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(a.out, "%-32s %-14s %-16s %5s QSOs  created %s\n",
					l.LogID(), l.Kind(), l.Label(), humanize.Comma(int64(l.Len())), humanize.Time(l.CreatedAt()))
			}
			return nil
		},
	}
}

func (a *app) loadArg(cmd *cli.Command, usage string) (logbook.Log, error) {
	if cmd.Args().Len() < 1 {
		return nil, fmt.Errorf("%w: %s", errUsage, usage)
	}
	return a.store.Load(cmd.Args().First())
}

func (a *app) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a log and its contacts",
		ArgsUsage: "<log-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l, err := a.loadArg(cmd, "hamlog show <log-id>")
			if err != nil {
				return err
			}
			writeLogHeader(a.out, l)
			for i, q := range l.QSOs() {
				fmt.Fprintf(a.out, "%4d  %s\n", i, describeQSO(q))
			}
			return nil
		},
	}
}

func writeLogHeader(w io.Writer, l logbook.Log) {
	fmt.Fprintf(w, "Log:      %s (%s)\n", l.LogID(), l.Kind())
	fmt.Fprintf(w, "Station:  %s\n", l.StationCallsign())
	if l.Operator() != "" {
		fmt.Fprintf(w, "Operator: %s\n", l.Operator())
	}
	fmt.Fprintf(w, "Grid:     %s%s\n", l.GridSquare(), gridPosition(l.GridSquare()))
	switch v := l.(type) {
	case *logbook.ParkLog:
		fmt.Fprintf(w, "Park:     %s\n", v.ParkRef())
	case *logbook.FieldContestLog:
		fmt.Fprintf(w, "Exchange: %s %s\n", v.SentExchange(), v.Setup().Power)
	case *logbook.WinterContestLog:
		fmt.Fprintf(w, "Exchange: %s\n", v.SentExchange())
	}
	fmt.Fprintf(w, "Created:  %s\n", l.CreatedAt().Format("2006-01-02 15:04:05Z"))
	fmt.Fprintf(w, "QSOs:     %d\n", l.Len())
}

// gridPosition renders the south-west corner of a locator, or nothing when
// the locator cannot be decoded.
func gridPosition(grid string) string {
	p, err := maidenhead.ParseLocator(grid)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (%.2f, %.2f)", p.Latitude, p.Longitude)
}

func describeQSO(q logbook.QSO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-10s %-5s %-5s %s/%s",
		q.Timestamp().Format("2006-01-02 15:04"), q.TheirCall(), q.Band(), q.Mode(), q.RSTSent(), q.RSTRcvd())
	if q.HasFrequency() {
		fmt.Fprintf(&b, "  %.1f kHz", q.FrequencyKHz())
	}
	if q.TheirPark() != "" {
		fmt.Fprintf(&b, "  P2P %s", q.TheirPark())
	}
	if q.ExchangeRcvd() != "" {
		fmt.Fprintf(&b, "  rcvd %s", q.ExchangeRcvd())
	}
	if q.Comment() != "" {
		fmt.Fprintf(&b, "  %q", q.Comment())
	}
	return b.String()
}

func (a *app) addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Log a contact",
		ArgsUsage: "<log-id> <call>",
		Flags:     qsoFlags(),
		Action:    a.addQSO,
	}
}

// Purpose: Validate and append one contact to a stored log.
// Key aspects: Duplicate and busted-call hits are warnings only; the contact
// is always logged.
// Upstream: "add" command.
// Downstream: buildQSO, logbook.FindDuplicates, store.AppendQSO.
func (a *app) addQSO(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("%w: hamlog add <log-id> <call>", errUsage)
	}
	l, err := a.store.Load(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	p := logbook.QSOParams{TheirCall: cmd.Args().Get(1), Timestamp: wallClock()}
	if err := applyQSOFlags(cmd, &p, true); err != nil {
		return err
	}
	q, err := logbook.NewQSO(p)
	if err != nil {
		return err
	}

	for _, d := range logbook.FindDuplicates(l, q) {
		fmt.Fprintf(a.out, "DUPE: %s already worked at %s\n", d.TheirCall(), d.Timestamp().Format("15:04Z"))
	}
	if dist := a.cfg.Dupes.SimilarCallDistance; dist > 0 {
		for _, s := range logbook.SimilarCalls(l, q, dist) {
			fmt.Fprintf(a.out, "check call: %s is close to %s worked at %s\n", q.TheirCall(), s.TheirCall(), s.Timestamp().Format("15:04Z"))
		}
	}

	if err := a.store.AppendQSO(l.LogID(), q); err != nil {
		return err
	}
	l.AddQSO(q)
	a.log(sourceStore).Debug("appended qso", "log_id", l.LogID(), "call", q.TheirCall(), "band", q.Band(), "mode", q.Mode())
	a.syncArchive(l)

	fmt.Fprintf(a.out, "Logged %s (#%d)\n", q.TheirCall(), l.Len()-1)
	if _, ok := l.(*logbook.ParkLog); ok {
		writeActivation(a.out, l)
	}
	return nil
}

// applyQSOFlags copies command flags onto p. When fresh is false only flags
// the user actually passed are applied, so an edit keeps untouched fields.
func applyQSOFlags(cmd *cli.Command, p *logbook.QSOParams, fresh bool) error {
	set := func(name string) bool { return fresh || cmd.IsSet(name) }

	if set("mode") {
		mode, err := logbook.ParseMode(cmd.String("mode"))
		if err != nil {
			return err
		}
		p.Mode = mode
	}
	if set("freq") {
		p.FrequencyKHz = cmd.Float("freq")
	}
	if set("band") {
		band, err := resolveBand(cmd.String("band"), p.FrequencyKHz)
		if err != nil {
			return err
		}
		p.Band = band
	} else if cmd.IsSet("freq") {
		if band, ok := logbook.BandForFrequency(p.FrequencyKHz); ok {
			p.Band = band
		}
	}
	if set("rst-sent") {
		p.RSTSent = defaultReport(cmd.String("rst-sent"), p.Mode)
	}
	if set("rst-rcvd") {
		p.RSTRcvd = defaultReport(cmd.String("rst-rcvd"), p.Mode)
	}
	if set("park") {
		p.TheirPark = cmd.String("park")
	}
	if set("exchange") {
		p.ExchangeRcvd = cmd.String("exchange")
	}
	if set("comment") {
		p.Comment = cmd.String("comment")
	}
	if cmd.IsSet("time") {
		at, err := parseWhen(cmd.String("time"))
		if err != nil {
			return err
		}
		p.Timestamp = at
	}
	return nil
}

func defaultReport(value string, mode logbook.Mode) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return mode.DefaultRST()
}

// resolveBand parses an explicit band label, falling back to the band that
// contains freqKHz.
func resolveBand(label string, freqKHz float64) (logbook.Band, error) {
	if strings.TrimSpace(label) != "" {
		return logbook.ParseBand(label)
	}
	if freqKHz > 0 {
		if band, ok := logbook.BandForFrequency(freqKHz); ok {
			return band, nil
		}
		return 0, fmt.Errorf("%.1f kHz is outside the amateur bands; pass --band", freqKHz)
	}
	return 0, fmt.Errorf("%w: --band or --freq is required", errUsage)
}

var whenLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02T15:04"}

// parseWhen reads a UTC contact time. Layouts without a zone are UTC.
func parseWhen(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

func (a *app) editCommand() *cli.Command {
	flags := append(qsoFlags(), &cli.StringFlag{Name: "call", Usage: "corrected callsign"})
	return &cli.Command{
		Name:      "edit",
		Usage:     "Correct a logged contact",
		ArgsUsage: "<log-id> <index>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%w: hamlog edit <log-id> <index>", errUsage)
			}
			l, err := a.store.Load(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("%w: index must be a number", errUsage)
			}
			current, ok := l.QSO(index)
			if !ok {
				return &logbook.IndexError{Index: index, Len: l.Len()}
			}
			p := current.Params()
			if cmd.IsSet("call") {
				p.TheirCall = cmd.String("call")
			}
			if err := applyQSOFlags(cmd, &p, false); err != nil {
				return err
			}
			q, err := logbook.NewQSO(p)
			if err != nil {
				return err
			}
			if err := l.UpdateQSO(index, q); err != nil {
				return err
			}
			if err := a.store.Save(l); err != nil {
				return err
			}
			a.log(sourceStore).Info("edited qso", "log_id", l.LogID(), "index", index)
			a.syncArchive(l)
			fmt.Fprintf(a.out, "Updated #%d: %s\n", index, describeQSO(q))
			return nil
		},
	}
}

func (a *app) dupesCommand() *cli.Command {
	return &cli.Command{
		Name:      "dupes",
		Usage:     "Check whether a call would be a duplicate",
		ArgsUsage: "<log-id> <call>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "band", Usage: "band, e.g. 20m"},
			&cli.StringFlag{Name: "mode", Usage: "mode", Value: logbook.ModeSSB.String()},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%w: hamlog dupes <log-id> <call>", errUsage)
			}
			l, err := a.store.Load(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			band, err := resolveBand(cmd.String("band"), 0)
			if err != nil {
				return err
			}
			mode, err := logbook.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}
			candidate, err := logbook.NewQSO(logbook.QSOParams{
				TheirCall: cmd.Args().Get(1),
				RSTSent:   mode.DefaultRST(),
				RSTRcvd:   mode.DefaultRST(),
				Band:      band,
				Mode:      mode,
				Timestamp: wallClock(),
			})
			if err != nil {
				return err
			}
			dupes := logbook.FindDuplicates(l, candidate)
			if len(dupes) == 0 {
				fmt.Fprintf(a.out, "%s on %s %s: new\n", candidate.TheirCall(), band, mode)
				return nil
			}
			fmt.Fprintf(a.out, "%s on %s %s: DUPE (%d)\n", candidate.TheirCall(), band, mode, len(dupes))
			for _, d := range dupes {
				fmt.Fprintf(a.out, "      %s\n", describeQSO(d))
			}
			return nil
		},
	}
}

func (a *app) statusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show today's progress for a log",
		ArgsUsage: "<log-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l, err := a.loadArg(cmd, "hamlog status <log-id>")
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %d QSOs total\n", l.Label(), l.Len())
			writeActivation(a.out, l)
			return nil
		},
	}
}

func writeActivation(w io.Writer, l logbook.Log) {
	today := logbook.QSOCountToday(l)
	if _, ok := l.(*logbook.ParkLog); !ok {
		fmt.Fprintf(w, "Today: %d unique contacts\n", today)
		return
	}
	if logbook.IsActivated(l) {
		fmt.Fprintf(w, "Today: %d unique contacts, park activated\n", today)
		return
	}
	fmt.Fprintf(w, "Today: %d unique contacts, %d more to activate\n", today, logbook.NeedsForActivation(l))
}

func (a *app) exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write a log as an ADIF file",
		ArgsUsage: "<log-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (defaults to the export directory)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l, err := a.loadArg(cmd, "hamlog export <log-id>")
			if err != nil {
				return err
			}
			now := wallClock()
			path := strings.TrimSpace(cmd.String("out"))
			if path == "" {
				path = filepath.Join(a.cfg.Export.Dir, adif.DefaultExportFilename(l, now))
			}
			if err := adif.Export(l, path, now); err != nil {
				return err
			}
			a.log(sourceExport).Info("exported log", "log_id", l.LogID(), "qsos", l.Len(), "path", path)
			fmt.Fprintf(a.out, "Wrote %d QSOs to %s\n", l.Len(), path)
			return nil
		},
	}
}

func (a *app) deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a log file",
		ArgsUsage: "<log-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: hamlog delete <log-id>", errUsage)
			}
			id := cmd.Args().First()
			if err := a.store.Delete(id); err != nil {
				return err
			}
			if a.archive != nil {
				if err := a.archive.Remove(id); err != nil {
					a.log(sourceArchive).Warn("archive cleanup failed", "log_id", id, "err", err)
				}
			}
			a.log(sourceStore).Info("deleted log", "log_id", id)
			fmt.Fprintf(a.out, "Deleted %s\n", id)
			return nil
		},
	}
}

func (a *app) workedCommand() *cli.Command {
	return &cli.Command{
		Name:      "worked",
		Usage:     "Look up earlier contacts with a call across all logs",
		ArgsUsage: "<call>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "maximum contacts to list", Value: defaultWorkedLimit},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: hamlog worked <call>", errUsage)
			}
			if a.archive == nil {
				return errors.New("the contact archive is disabled; set archive.enabled in the config")
			}
			contacts, err := a.archive.WorkedBefore(cmd.Args().First(), int(cmd.Int("limit")))
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				fmt.Fprintf(a.out, "%s: not worked before\n", strings.ToUpper(strings.TrimSpace(cmd.Args().First())))
				return nil
			}
			for _, c := range contacts {
				fmt.Fprintf(a.out, "%s  %-5s %-5s %-10s %s (%s)\n",
					c.Time.Format("2006-01-02 15:04"), c.Band, c.Mode, c.StationCallsign, c.LogID, humanize.Time(c.Time))
			}
			return nil
		},
	}
}

func (a *app) archiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "Maintain the contact archive",
		Commands: []*cli.Command{
			{
				Name:  "rebuild",
				Usage: "Rebuild the archive from every log file",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "fresh", Usage: "delete the database file first instead of clearing its tables"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if a.archive == nil {
						return errors.New("the contact archive is disabled; set archive.enabled in the config")
					}
					if cmd.Bool("fresh") {
						if err := a.recreateArchive(); err != nil {
							return err
						}
					}
					logs, err := a.store.LoadAll()
					if err != nil {
						if logs == nil {
							return err
						}
						a.log(sourceStore).Warn("some logs could not be read", "err", err)
					}
					if err := a.archive.Rebuild(logs); err != nil {
						return err
					}
					n, err := a.archive.Count()
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "Archived %s contacts from %d logs\n", humanize.Comma(n), len(logs))
					return nil
				},
			},
		},
	}
}

func (a *app) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a.cfg.Print(a.out)
			return nil
		},
	}
}

// recreateArchive closes the archive, deletes its database file and opens an
// empty one at the same path.
func (a *app) recreateArchive() error {
	path := a.archive.Path()
	if err := a.archive.Close(); err != nil {
		return err
	}
	a.archive = nil
	if err := archive.DropDB(path); err != nil {
		return err
	}
	arc, err := archive.Open(path, logfFor(a.logger, sourceArchive))
	if err != nil {
		return err
	}
	a.archive = arc
	a.log(sourceArchive).Info("archive recreated", "path", path)
	return nil
}

// syncArchive mirrors l into the archive. The log files stay authoritative,
// so failures are logged and otherwise ignored.
func (a *app) syncArchive(l logbook.Log) {
	if a.archive == nil {
		return
	}
	if err := a.archive.Sync(l); err != nil {
		a.log(sourceArchive).Warn("archive sync failed", "log_id", l.LogID(), "err", err)
	}
}

// isNotFound reports whether err means the requested log does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrLogNotFound)
}

// hintFor suggests a next step for errors a user can act on.
func hintFor(err error) string {
	switch {
	case isNotFound(err):
		return "run \"hamlog list\" to see saved log ids"
	case errors.Is(err, logbook.ErrDuplicateLog):
		return "a log for this station already exists today"
	case errors.Is(err, errUsage):
		return "run \"hamlog help\" for the command list"
	}
	return ""
}
