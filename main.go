// Program hamlog keeps amateur-radio contact logs (general operating, park
// activations and the two field-contest weekends) as JSONL files, checks
// contacts for duplicates and exports logs as ADIF.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"hamlog/adif"
	"hamlog/archive"
	"hamlog/config"
	"hamlog/store"
)

// Version is stamped at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// app carries what the Before hook prepares for every subcommand.
type app struct {
	out     io.Writer
	cfg     *config.Config
	logger  *log.Logger
	fanout  *logFanout
	store   *store.Store
	archive *archive.Archive
}

func main() {
	adif.ProgramVersion = Version
	root := newRootCommand(os.Stdout)
	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hamlog: %v\n", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

// newRootCommand builds the command tree. Command output goes to out; log
// lines go to the configured sinks.
func newRootCommand(out io.Writer) *cli.Command {
	a := &app{out: out}
	return &cli.Command{
		Name:    "hamlog",
		Usage:   "Amateur radio contact logger",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Sources: cli.EnvVars(config.EnvPath),
				Usage:   "path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding the log files (overrides storage.log_dir)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides logging.level)",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			a.newCommand(),
			a.listCommand(),
			a.showCommand(),
			a.addCommand(),
			a.editCommand(),
			a.dupesCommand(),
			a.statusCommand(),
			a.exportCommand(),
			a.deleteCommand(),
			a.workedCommand(),
			a.archiveCommand(),
			a.configCommand(),
		},
	}
}

// Purpose: Resolve configuration and open the shared resources.
// Key aspects: Flags override the YAML file; the archive is optional and a
// failure to open it only disables cross-log lookups.
// Upstream: cli root command.
// Downstream: config.LoadOrDefault, setupLogging, store.Open, archive.Open.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := strings.TrimSpace(cmd.String("config"))
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return ctx, err
	}
	if dir := strings.TrimSpace(cmd.String("data-dir")); dir != "" {
		cfg.Storage.LogDir = dir
	}
	if level := strings.TrimSpace(cmd.String("log-level")); level != "" {
		cfg.Logging.Level = level
	}
	a.cfg = cfg

	var console io.Writer
	if consoleWanted(cfg.Logging, os.Stderr) {
		console = os.Stderr
	}
	logger, fanout, err := setupLogging(cfg.Logging, console)
	a.logger, a.fanout = logger, fanout
	if err != nil {
		logger.With("source", sourceApp).Warn("file logging disabled", "err", err)
	}

	st, err := store.Open(cfg.Storage.LogDir)
	if err != nil {
		return ctx, err
	}
	a.store = st

	if cfg.Archive.Enabled {
		arc, err := archive.Open(cfg.Archive.DBPath, logfFor(logger, sourceArchive))
		if err != nil {
			logger.With("source", sourceArchive).Warn("archive unavailable", "path", cfg.Archive.DBPath, "err", err)
		} else {
			a.archive = arc
		}
	}
	logger.With("source", sourceApp).Debug("ready", "config", cfg.LoadedFrom, "logs", st.Dir())
	return ctx, nil
}

func (a *app) after(ctx context.Context, cmd *cli.Command) error {
	var errs []error
	if a.archive != nil {
		errs = append(errs, a.archive.Close())
		a.archive = nil
	}
	if a.fanout != nil {
		errs = append(errs, a.fanout.Close())
	}
	return errors.Join(errs...)
}

func (a *app) log(source string) *log.Logger {
	return a.logger.With("source", source)
}
