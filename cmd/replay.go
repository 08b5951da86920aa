package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/render"
	"github.com/zjrosen/dlist/internal/script"
	"github.com/zjrosen/dlist/internal/tracing"
)

// ErrStepFailed is returned by replay --stop-on-error.
var ErrStepFailed = errors.New("step failed")

type replayOptions struct {
	diff        bool
	backward    bool
	stopOnError bool
}

var replayOpts replayOptions

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a YAML script of list operations and print each step",
	Long: `Replay decodes a script, creates its collections, then runs every step
through the same command pipeline as the terminal UI. Each step prints the
operation, its outcome and the addressed collection afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayOpts.diff, "diff", false,
		"print a value diff against the collection's previous state")
	replayCmd.Flags().BoolVar(&replayOpts.backward, "backward", false,
		"also print each collection tail to head")
	replayCmd.Flags().BoolVar(&replayOpts.stopOnError, "stop-on-error", false,
		"abort at the first failed step")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	defer closeLog()

	if configErr != nil {
		return configErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := args[0]
	s, err := script.ParseFile(path)
	if err != nil {
		return err
	}

	provider, err := newTracing(cfg.Tracing)
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	reg := registry.New()
	defer reg.Close()
	proc := newProcessor(reg, provider.Tracer(), nil)

	r := &replayer{
		out:    cmd.OutOrStdout(),
		proc:   proc,
		tracer: provider.Tracer(),
		opts:   replayOpts,
		prev:   make(map[string][]int64),
	}
	return r.run(cmd.Context(), path, s)
}

type replayer struct {
	out    io.Writer
	proc   *processor.Processor
	tracer trace.Tracer
	opts   replayOptions

	// prev holds each collection's values after its last step, by ID.
	prev   map[string][]int64
	failed int
}

func (r *replayer) run(ctx context.Context, path string, s *script.Script) error {
	steps, err := s.Commands(command.SourceScript)
	if err != nil {
		return err
	}
	seeds := s.Seed(r.proc.Registry().Len(), command.SourceScript)

	ctx, span := tracing.StartReplay(ctx, r.tracer, path, len(steps))
	defer span.End()
	traceID := tracing.GenerateTraceID()

	log.Info(log.CatScript, "replaying script", "path", path, "collections", len(s.Collections), "steps", len(steps))
	if s.Description != "" {
		_, _ = fmt.Fprintf(r.out, "# %s\n", s.Description)
	}

	for _, c := range seeds {
		tracing.Propagate(span, traceID, c)
		result, err := r.proc.Process(ctx, c)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", render.Command(c), err)
		}
		if !result.Success {
			return fmt.Errorf("seeding %s: %w", render.Command(c), result.Error)
		}
		r.remember(result)
	}
	for _, snap := range r.proc.Registry().Entries() {
		_, _ = fmt.Fprintf(r.out, "    %s = %s\n", snap.Name, render.Values(snap.Values))
	}

	for i, c := range steps {
		tracing.Propagate(span, traceID, c)
		result, err := r.proc.Process(ctx, c)
		if err != nil {
			result = command.ErrorResult(err, nil)
		}
		r.report(i+1, c, result)

		if !result.Success {
			r.failed++
			if r.opts.stopOnError {
				return fmt.Errorf("step %d (%s): %w: %w", i+1, c.Type(), ErrStepFailed, result.Error)
			}
		}
	}

	_, _ = fmt.Fprintf(r.out, "%d steps, %d failed\n", len(steps), r.failed)
	return nil
}

func (r *replayer) report(n int, c command.Command, result *command.CommandResult) {
	_, _ = fmt.Fprintf(r.out, "%3d %s: %s\n", n, render.Command(c), render.Outcome(c.Type(), result))

	out, ok := result.Data.(processor.Outcome)
	if !ok || out.Index < 0 {
		return
	}
	snap := out.Collection
	if c.Type() == command.CmdRemoveCollection {
		if result.Success {
			delete(r.prev, snap.ID)
		}
		return
	}

	_, _ = fmt.Fprintf(r.out, "    %s = %s\n", snap.Name, render.Values(snap.Values))
	if r.opts.diff {
		if segs := render.Diff(r.prev[snap.ID], snap.Values); render.Changed(segs) {
			_, _ = fmt.Fprintf(r.out, "    diff %s\n", render.FormatDiff(segs))
		}
	}
	if r.opts.backward {
		back := slices.Clone(snap.Values)
		slices.Reverse(back)
		_, _ = fmt.Fprintf(r.out, "    back %s\n", render.Values(back))
	}
	r.remember(result)
}

func (r *replayer) remember(result *command.CommandResult) {
	if out, ok := result.Data.(processor.Outcome); ok && out.Index >= 0 {
		r.prev[out.Collection.ID] = out.Collection.Values
	}
}
