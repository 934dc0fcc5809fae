package main

import (
	"fmt"
	"os"

	"github.com/andareed/siftly-peaks/config"
	"github.com/andareed/siftly-peaks/export"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type rootFlags struct {
	configPath string
	debugLog   string
	logLevel   string
	peakMin    string
	troughMax  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:           "sfpeaks [file]",
		Short:         "Find and explore peaks and troughs in x,y data",
		Long:          "sfpeaks plots an x,y series in the terminal, marks its local peaks and troughs, and exports them.",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var src series.Source
			if len(args) == 1 {
				src.Path = args[0]
			}
			logging.Infof("siftly-peaks %s: started", Version)

			m := newModel(cfg, src)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
				logging.Errorf("tea program error: %v", err)
				return errors.Wrap(err, "run ui")
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to an sfpeaks.yaml config file")
	pf.StringVar(&f.debugLog, "debug", "", "write debug logs to this file")
	pf.StringVar(&f.logLevel, "log-level", "debug", "log level used with --debug")
	pf.StringVar(&f.peakMin, "peak-min", "", "keep only peaks with y at or above this value")
	pf.StringVar(&f.troughMax, "trough-max", "", "keep only troughs with y at or below this value")

	rootCmd.AddCommand(newDetectCmd(&f))
	return rootCmd
}

// setup loads config and logging, then applies flag overrides.
func (f *rootFlags) setup(cmd *cobra.Command) (*config.Config, func(), error) {
	cleanup, err := logging.Setup(f.debugLog, f.logLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "setup logging")
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if cmd.Flags().Changed("peak-min") {
		cfg.Thresholds.PeakMin = f.peakMin
	}
	if cmd.Flags().Changed("trough-max") {
		cfg.Thresholds.TroughMax = f.troughMax
	}
	return cfg, cleanup, nil
}

func newDetectCmd(f *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Detect extrema without the UI and write the table",
		Long: "Detect the filtered peaks and troughs of <file> and write them as a table. " +
			"The format follows the output extension (.xlsx, .csv, .json); without -o, CSV goes to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s, frame, err := session.New(cfg.SessionOptions()).Plot(
				series.Source{Path: args[0]}, cfg.Thresholds.PeakMin, cfg.Thresholds.TroughMax)
			if err != nil {
				return err
			}
			set := s.Detected()
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d samples, %d/%d peaks, %d/%d troughs\n",
				args[0], frame.Series.Len(), len(frame.Peaks), len(set.Peaks), len(frame.Troughs), len(set.Troughs))
			tbl, err := s.Export()
			if err != nil {
				return err
			}

			if out == "" {
				return export.WriteCSV(cmd.OutOrStdout(), tbl, cfg.Export.MissingMarker)
			}
			opts := export.Options{MissingMarker: cfg.Export.MissingMarker, Sheet: cfg.Export.Sheet}
			if err := export.Write(out, tbl, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", tbl.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.xlsx, .csv or .json)")
	return cmd
}
