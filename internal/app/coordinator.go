package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/framezip/internal/domain"
	"github.com/bft-labs/framezip/internal/ports"
)

// CoordinatorConfig contains configuration for the compression pipeline.
type CoordinatorConfig struct {
	// GroupSize is the partition size the groups were built with. It is
	// logged; the fan-out width of a group is its own length.
	GroupSize int
}

// Result is what a pipeline run produced.
type Result struct {
	Stats  domain.Stats
	Frames []domain.FrameResult
}

// Coordinator drives frames through read, compress and append.
// Groups run one after another; frames inside a group run concurrently and
// are appended in their sorted order.
type Coordinator struct {
	config CoordinatorConfig
	source ports.FrameSource
	comp   ports.Compressor
	sink   ports.RecordSink
	logger ports.Logger
}

// NewCoordinator creates a new coordinator with the given dependencies.
func NewCoordinator(
	config CoordinatorConfig,
	source ports.FrameSource,
	comp ports.Compressor,
	sink ports.RecordSink,
	logger ports.Logger,
) *Coordinator {
	if config.GroupSize <= 0 {
		config.GroupSize = DefaultGroupSize
	}
	return &Coordinator{
		config: config,
		source: source,
		comp:   comp,
		sink:   sink,
		logger: logger,
	}
}

// Run compresses groups built by Partition into the sink, one group at a
// time. The first error aborts the run; the returned Result then holds the
// totals of the groups that completed.
func (c *Coordinator) Run(ctx context.Context, groups []domain.WorkGroup) (Result, error) {
	var frames int
	for _, g := range groups {
		frames += g.Size()
	}

	c.logger.Info("starting run",
		ports.Int("frames", frames),
		ports.Int("groups", len(groups)),
		ports.Int("group_size", c.config.GroupSize),
	)

	res := Result{Frames: make([]domain.FrameResult, 0, frames)}
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()
		results, err := c.runGroup(ctx, g)
		if err != nil {
			c.logger.Error("group failed",
				ports.Int("group", g.Index),
				ports.String("first", g.First()),
				ports.String("last", g.Last()),
				ports.Err(err),
			)
			return res, fmt.Errorf("group %d (%s..%s): %w", g.Index, g.First(), g.Last(), err)
		}

		// The group has joined; fold its private results into the totals.
		var gs domain.Stats
		for _, r := range results {
			gs.Add(r)
		}
		gs.Groups = 1
		res.Stats.Merge(gs)
		res.Frames = append(res.Frames, results...)

		c.logger.Info("group done",
			ports.Int("group", g.Index),
			ports.Int("frames", g.Size()),
			ports.Int64("bytes_in", gs.BytesIn),
			ports.Int64("bytes_out", gs.BytesOut),
			ports.Duration("duration", time.Since(start)),
		)
	}
	return res, nil
}

// runGroup compresses every frame of g concurrently and appends the records
// in group order. Each unit writes only its own slot of the result slice.
func (c *Coordinator) runGroup(ctx context.Context, g domain.WorkGroup) ([]domain.FrameResult, error) {
	results := make([]domain.FrameResult, g.Size())
	order := newTurns(g.Size())

	eg, egctx := errgroup.WithContext(ctx)
	for i, frame := range g.Frames {
		eg.Go(func() error {
			raw, err := c.source.ReadFrame(egctx, frame)
			if err != nil {
				return fmt.Errorf("read %s: %w", frame.Name, err)
			}
			packed, err := c.comp.Compress(raw)
			if err != nil {
				return fmt.Errorf("compress %s: %w", frame.Name, err)
			}

			if err := order.wait(egctx, i); err != nil {
				return err
			}
			if err := c.sink.AppendRecord(packed); err != nil {
				return fmt.Errorf("append %s: %w", frame.Name, err)
			}
			order.done(i)

			results[i] = domain.FrameResult{
				Name:     frame.Name,
				BytesIn:  int64(len(raw)),
				BytesOut: int64(len(packed)),
			}
			c.logger.Debug("frame compressed",
				ports.String("frame", frame.Name),
				ports.Int("bytes_in", len(raw)),
				ports.Int("bytes_out", len(packed)),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
