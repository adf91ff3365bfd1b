package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/app"
	"github.com/comitanigiacomo/kanso-heatmap/internal/config"
	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
	"github.com/comitanigiacomo/kanso-heatmap/internal/logging"
)

type rootOptions struct {
	DocumentID string
	DBDriver   string
	DBPath     string
	Timezone   string
	Verbose    bool
}

// session holds the app opened for a single command invocation.
type session struct {
	clock services.Clock
	app   *app.App
}

func newRootCmd(clock services.Clock) *cobra.Command {
	opts := &rootOptions{}
	s := &session{clock: clock}

	cmd := &cobra.Command{
		Use:           "heatmap",
		Short:         "Track habits to avoid on a twelve month heatmap.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.DocumentID, "doc", "", "document id (overrides DOCUMENT_ID)")
	flags.StringVar(&opts.DBDriver, "db-driver", "", "memory, sqlite, pgx or postgres (overrides DB_DRIVER)")
	flags.StringVar(&opts.DBPath, "db-path", "", "sqlite file (overrides DB_PATH)")
	flags.StringVar(&opts.Timezone, "tz", "", "IANA zone used for today (overrides TZ_NAME)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr")

	addShow(cmd, s)
	addStreaks(cmd, s)
	addToggle(cmd, s)
	addDay(cmd, s)
	addNote(cmd, s)
	addStart(cmd, s)
	addClear(cmd, s)
	addHabits(cmd, s)

	return cmd
}

func (s *session) open(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	if opts.DocumentID != "" {
		cfg.DocumentID = opts.DocumentID
	}
	if opts.DBDriver != "" {
		cfg.DBDriver = opts.DBDriver
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.Timezone != "" {
		if cfg.Location, err = config.LoadLocation(opts.Timezone); err != nil {
			return err
		}
	}

	logger := zap.NewNop()
	if opts.Verbose {
		if logger, err = logging.Setup("debug"); err != nil {
			return err
		}
	}

	s.app, err = app.New(cfg, logger, s.clock)
	return err
}

func (s *session) close() {
	if s.app == nil {
		return
	}
	_ = s.app.Logger.Sync()
	s.app.Close()
	s.app = nil
}
