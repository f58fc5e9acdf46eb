// Package framezip packs a directory of raw image frames into a single
// container of zlib-compressed, length-prefixed records.
//
// Example usage:
//
//	cfg := framezip.DefaultConfig()
//	cfg.InputDir = "/path/to/frames"
//	res, err := framezip.Run(context.Background(), cfg)
//	if errors.Is(err, framezip.ErrDirectoryNotFound) {
//	    fmt.Println("An error has occurred")
//	    return
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	framezip.WriteReport(os.Stdout, res.Stats, res.Elapsed)
package framezip

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/framezip/internal/adapters/fs"
	"github.com/bft-labs/framezip/internal/app"
	"github.com/bft-labs/framezip/internal/codec"
	"github.com/bft-labs/framezip/internal/container"
	"github.com/bft-labs/framezip/internal/domain"
	"github.com/bft-labs/framezip/pkg/log"
)

// DefaultOutput is the container path used when none is configured.
const DefaultOutput = "video.vzip"

// RemainderPolicy decides what happens to a final group shorter than the
// group size.
type RemainderPolicy = app.RemainderPolicy

const (
	RemainderKeep  = app.RemainderKeep
	RemainderDrop  = app.RemainderDrop
	RemainderError = app.RemainderError
)

// ParseRemainderPolicy parses "keep", "drop" or "error".
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	return app.ParseRemainderPolicy(s)
}

// Stats holds byte and frame totals of a run.
type Stats = domain.Stats

// FrameResult is the per-frame outcome of a run.
type FrameResult = domain.FrameResult

// Errors returned by Run. Test with errors.Is.
var (
	ErrDirectoryNotFound   = domain.ErrDirectoryNotFound
	ErrFrameRead           = domain.ErrFrameRead
	ErrFrameTooLarge       = domain.ErrFrameTooLarge
	ErrCompressionOverflow = domain.ErrCompressionOverflow
	ErrAllocation          = domain.ErrAllocation
	ErrInvalidConfig       = domain.ErrInvalidConfig
	ErrUnevenFrames        = app.ErrUnevenFrames
)

// Config holds the settings of one compression run.
type Config struct {
	// InputDir is scanned (non-recursively) for frame files.
	InputDir string
	// Output is the container path. It only appears once the run succeeds.
	Output string
	// Ext is the file name suffix that marks a frame.
	Ext string

	GroupSize int
	// MaxFrameBytes bounds both a raw frame and its compressed form.
	MaxFrameBytes int
	Level         int
	Remainder     RemainderPolicy

	// ReportPath, when set, receives a per-frame CSV report.
	ReportPath string
	// SummaryPath, when set, receives a JSON run summary.
	SummaryPath string
}

// DefaultConfig returns the stock settings: .ppm frames in groups of
// ten, zlib level 9, 1 MiB buffers, output to video.vzip.
func DefaultConfig() Config {
	return Config{
		Output:        DefaultOutput,
		Ext:           fs.DefaultExt,
		GroupSize:     app.DefaultGroupSize,
		MaxFrameBytes: fs.DefaultMaxFrameBytes,
		Level:         codec.DefaultLevel,
		Remainder:     RemainderKeep,
	}
}

// Result describes a successful run.
type Result struct {
	// RunID tags the log lines and summary of one run.
	RunID          uuid.UUID
	Stats          Stats
	Frames         []FrameResult
	Container      string
	ContainerBytes int64
	Elapsed        time.Duration
}

// Option configures optional behavior of Run.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger for the run. Without it nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WriteReport prints the "Compression rate" and "Time" lines. The rate is
// N/A when nothing was read.
func WriteReport(w io.Writer, s Stats, elapsed time.Duration) error {
	return app.WriteReport(w, s, elapsed)
}

// Run lists the frames of cfg.InputDir, compresses them group by group and
// writes the container. The container is published only if every frame
// succeeded; on error nothing is left at cfg.Output. If the input directory
// cannot be opened, ErrDirectoryNotFound is returned before any file is
// created.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger

	if cfg.Output == "" {
		return Result{}, fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if cfg.Ext == "" {
		return Result{}, fmt.Errorf("%w: frame extension is required", ErrInvalidConfig)
	}

	started := time.Now()
	runID := uuid.New()
	logger.Debug("run started", log.String("run_id", runID.String()), log.String("input", cfg.InputDir))

	frames, err := fs.ListFrames(cfg.InputDir, cfg.Ext)
	if err != nil {
		return Result{}, err
	}

	comp, err := codec.New(cfg.Level, cfg.MaxFrameBytes)
	if err != nil {
		return Result{}, err
	}

	// Partition first so an uneven frame count fails before any file exists.
	groups, err := app.Partition(frames, cfg.GroupSize, cfg.Remainder)
	if err != nil {
		return Result{}, err
	}

	w, err := container.Create(cfg.Output)
	if err != nil {
		return Result{}, fmt.Errorf("create container: %w", err)
	}

	coord := app.NewCoordinator(
		app.CoordinatorConfig{GroupSize: cfg.GroupSize},
		fs.NewFrameReader(cfg.MaxFrameBytes),
		comp,
		w,
		logger,
	)
	res, err := coord.Run(ctx, groups)
	if err != nil {
		if abortErr := w.Abort(); abortErr != nil {
			logger.Warn("failed to discard partial container", log.String("path", cfg.Output), log.Err(abortErr))
		}
		return Result{}, err
	}
	if err := w.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit container: %w", err)
	}

	out := Result{
		RunID:          runID,
		Stats:          res.Stats,
		Frames:         res.Frames,
		Container:      cfg.Output,
		ContainerBytes: w.BytesWritten(),
		Elapsed:        time.Since(started),
	}
	fields := []log.Field{
		log.String("run_id", runID.String()),
		log.String("path", out.Container),
		log.Int("records", w.Records()),
		log.Int64("bytes", out.ContainerBytes),
		log.Duration("elapsed", out.Elapsed),
	}
	if rate, ok := out.Stats.Rate(); ok {
		fields = append(fields, log.Float64("rate", rate))
	}
	logger.Info("container written", fields...)

	if cfg.ReportPath != "" {
		if err := writeFrameReport(cfg.ReportPath, out.Frames); err != nil {
			return out, fmt.Errorf("write report: %w", err)
		}
	}
	if cfg.SummaryPath != "" {
		if err := fs.NewSummaryFile(cfg.SummaryPath).Save(summarize(cfg, out, started)); err != nil {
			return out, fmt.Errorf("write summary: %w", err)
		}
	}
	return out, nil
}

func writeFrameReport(path string, frames []FrameResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := app.WriteFrameCSV(f, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func summarize(cfg Config, res Result, started time.Time) fs.Summary {
	sum := fs.Summary{
		RunID:       res.RunID,
		InputDir:    cfg.InputDir,
		Container:   res.Container,
		Stats:       res.Stats,
		StartedAt:   started,
		FinishedAt:  started.Add(res.Elapsed),
		Elapsed:     res.Elapsed,
		ContainerSz: res.ContainerBytes,
	}
	if rate, ok := res.Stats.Rate(); ok {
		sum.Rate = &rate
	}
	if n := len(res.Frames); n > 0 {
		sum.FirstFrame = res.Frames[0].Name
		sum.LastFrame = res.Frames[n-1].Name
	}
	return sum
}
