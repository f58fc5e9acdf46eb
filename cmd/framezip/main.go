package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/framezip"
	"github.com/bft-labs/framezip/internal/cliconfig"
	"github.com/bft-labs/framezip/internal/watch"
	"github.com/bft-labs/framezip/pkg/log"
)

const longHelp = `
Pack a directory of raw image frames into one compressed container.

Frames matching the extension are sorted by name, split into groups and
compressed with zlib, one goroutine per frame within a group. Each frame
becomes one [uint32 length][payload] record, in sorted order. The container
is only written if every frame succeeds.
`

var exampleUsage = strings.TrimSpace(`
  framezip ./frames
  framezip --output movie.vzip --remainder drop ./frames
  framezip --watch --report frames.csv ./frames
  framezip inspect video.vzip
`)

// directoryErrorMessage is printed when the input directory cannot be opened.
const directoryErrorMessage = "An error has occurred"

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	started := time.Now()

	root := newRootCmd(started)
	if err := root.Execute(); err != nil {
		logger := log.NewZerologAdapter(os.Stderr, zerolog.ErrorLevel)
		logger.Error("framezip", log.Err(err))
		os.Exit(1)
	}
}

func newRootCmd(started time.Time) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "framezip [flags] <dir>",
		Short:         "Compress a directory of raw frames into a single container",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.InputDir = args[0]
			}

			// Build set of changed flags; a positional dir counts as the input flag
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				changed["input"] = true
			}

			if err := resolveConfig(&cfg, cfgPath, changed); err != nil {
				return err
			}

			level, _ := log.ParseLevel(cfg.LogLevel)
			logger := log.NewZerologAdapter(cmd.ErrOrStderr(), level)
			logger.Debug("configuration",
				log.String("input", cfg.InputDir),
				log.String("output", cfg.Output),
				log.Int("group_size", cfg.GroupSize),
				log.Int("level", cfg.Level),
				log.String("remainder", cfg.Remainder),
			)

			libCfg, err := libraryConfig(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ok, err := compress(ctx, cmd.OutOrStdout(), libCfg, logger, started)
			if err != nil || !ok || !cfg.Watch {
				return err
			}

			w := watch.New(cfg.InputDir, cfg.Ext, cfg.Debounce, func(ctx context.Context) {
				if _, err := compress(ctx, cmd.OutOrStdout(), libCfg, logger, time.Now()); err != nil {
					logger.Error("rebuild failed", log.Err(err))
				}
			}, logger, watchIgnores(libCfg)...)
			if err := w.Run(ctx); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.framezip/config.toml)")
	root.Flags().StringVar(&cfg.InputDir, "input", cfg.InputDir, "input directory (alternative to the positional argument)")
	cobra.CheckErr(root.Flags().MarkHidden("input"))
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "container file to write")
	root.Flags().StringVar(&cfg.Ext, "ext", cfg.Ext, "file name suffix that marks a frame")

	root.Flags().IntVar(&cfg.GroupSize, "group-size", cfg.GroupSize, "frames per group (and goroutines per group)")
	root.Flags().IntVar(&cfg.MaxFrameBytes, "max-frame-bytes", cfg.MaxFrameBytes, "largest raw or compressed frame accepted")
	root.Flags().IntVar(&cfg.Level, "level", cfg.Level, "zlib compression level (1-9)")
	root.Flags().StringVar(&cfg.Remainder, "remainder", cfg.Remainder, "final short group: keep, drop or error")

	root.Flags().StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "write a per-frame CSV report to this file")
	root.Flags().StringVar(&cfg.SummaryPath, "summary", cfg.SummaryPath, "write a JSON run summary to this file")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "rebuild the container whenever frames change")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a watch rebuild")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newInspectCmd())
	return root
}

// resolveConfig layers the config file and FRAMEZIP_* environment under the
// flags that were set explicitly, then validates the result.
func resolveConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func libraryConfig(cfg cliconfig.Config) (framezip.Config, error) {
	policy, err := framezip.ParseRemainderPolicy(cfg.Remainder)
	if err != nil {
		return framezip.Config{}, err
	}
	return framezip.Config{
		InputDir:      cfg.InputDir,
		Output:        cfg.Output,
		Ext:           cfg.Ext,
		GroupSize:     cfg.GroupSize,
		MaxFrameBytes: cfg.MaxFrameBytes,
		Level:         cfg.Level,
		Remainder:     policy,
		ReportPath:    cfg.ReportPath,
		SummaryPath:   cfg.SummaryPath,
	}, nil
}

// compress runs one pass and prints the rate and time lines. A missing input
// directory is reported on out and is not an error; ok is then false.
func compress(ctx context.Context, out io.Writer, cfg framezip.Config, logger log.Logger, started time.Time) (ok bool, err error) {
	res, err := framezip.Run(ctx, cfg, framezip.WithLogger(logger))
	if errors.Is(err, framezip.ErrDirectoryNotFound) {
		logger.Debug("input directory unusable", log.Err(err))
		fmt.Fprintln(out, directoryErrorMessage)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := framezip.WriteReport(out, res.Stats, time.Since(started)); err != nil {
		return false, fmt.Errorf("print report: %w", err)
	}
	return true, nil
}

// watchIgnores lists the files a run writes, so that writing them never
// triggers another run.
func watchIgnores(cfg framezip.Config) []string {
	var names []string
	for _, p := range []string{cfg.Output, cfg.ReportPath, cfg.SummaryPath} {
		if p != "" {
			names = append(names, filepath.Base(p))
		}
	}
	return names
}
