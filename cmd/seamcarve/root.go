package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamcarve/carver"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	workers    int
	verbose    bool

	cfg Config
	log *slog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "seamcarve",
		Short:         "Content-aware image shrinking by seam carving",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.IntVar(&a.workers, "workers", 1, "goroutines for energy computation (0 = GOMAXPROCS)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every removed seam")

	root.AddCommand(newResizeCmd(a), newEnergyCmd(a), newSeamCmd(a))

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// open decodes path and starts a carving session with the configured options.
func (a *app) open(path string) (*carver.Carver, error) {
	img, err := openImage(path)
	if err != nil {
		return nil, err
	}
	c, err := carver.New(img,
		carver.WithWorkers(a.cfg.Workers),
		carver.WithObserver(func(e carver.Event) {
			a.log.Debug("seam removed", "direction", e.Direction, "width", e.Width, "height", e.Height)
		}),
	)
	if err != nil {
		return nil, err
	}
	a.log.Debug("picture loaded", "path", path, "width", c.Width(), "height", c.Height())

	return c, nil
}
