package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/analysis"
	"github.com/philipparndt/polyclip/pkg/config"
	"github.com/philipparndt/polyclip/pkg/obj"
	"github.com/philipparndt/polyclip/pkg/watcher"
)

const watchDebounce = 500 * time.Millisecond

// runJob loads the job input, applies the operation and writes the outputs
func runJob(ctx context.Context, w io.Writer, job *config.Job) error {
	start := time.Now()
	model, err := loadModel(ctx, job.Input)
	if err != nil {
		return err
	}
	logger.Debug("running job", "operation", job.Operation, "input", job.Input, "triangles", model.TriangleCount())

	switch job.Operation {
	case config.OpClip:
		plane, err := job.ClipPlane()
		if err != nil {
			return err
		}
		result, err := analysis.ClipModel(model, plane)
		if err != nil {
			return fmt.Errorf("clip %v: %w", plane, err)
		}
		if err := writeResult(w, "Clipped", model.Name, job.Output, result); err != nil {
			return err
		}

	case config.OpBox:
		box, err := job.ClipBox()
		if err != nil {
			return err
		}
		result, err := analysis.ClipModelToBox(model, box)
		if err != nil {
			return fmt.Errorf("box clip: %w", err)
		}
		if err := writeResult(w, "Boxed", model.Name, job.Output, result); err != nil {
			return err
		}

	case config.OpSplit:
		plane, err := job.ClipPlane()
		if err != nil {
			return err
		}
		result, err := analysis.SplitModel(model, plane, job.Policy())
		if err != nil {
			return fmt.Errorf("split %v: %w", plane, err)
		}
		fmt.Fprintf(w, "Split by %v (%s): %d facets spanned the plane\n", plane, job.Policy(), result.Spanning)
		if err := writeResult(w, "Negative", model.Name+"_neg", job.Negative, &result.Negative); err != nil {
			return err
		}
		if err := writeResult(w, "Positive", model.Name+"_pos", job.Positive, &result.Positive); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown operation %q", job.Operation)
	}

	logger.Debug("job done", "elapsed", time.Since(start))
	return nil
}

func writeResult(w io.Writer, label, name, path string, result *analysis.Result) error {
	fmt.Fprintf(w, "%s: kept %d of %d facets (%d cut, %d dropped), area %.6f square units\n",
		label, result.Kept, result.Input, result.Cut, result.Dropped(), result.Area)
	if result.Kept > 0 {
		fmt.Fprintf(w, "  centroid %s\n", analysis.FormatVector(result.Centroid()))
	}
	if path == "" {
		return nil
	}
	if err := obj.WriteFile(path, name, result.Polygons); err != nil {
		return err
	}
	fmt.Fprintf(w, "  wrote %d polygons to %s\n", len(result.Polygons), path)
	return nil
}

// execute runs job once, then keeps re-running it on changes when --watch is set.
// load, when not nil, rereads the job itself before every run.
func execute(cmd *cobra.Command, job *config.Job, jobFile string, load func() (*config.Job, error)) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if err := runJob(ctx, out, job); err != nil {
		if !watch {
			return err
		}
		logger.Error("run failed", "err", err)
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	files, err := sourceFiles(job.Input)
	if err != nil {
		return err
	}
	if jobFile != "" {
		files = append(files, jobFile)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	rerun := func(path string) {
		mu.Lock()
		defer mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		logger.Info("change detected, re-running", "path", path)
		if load != nil {
			reloaded, err := load()
			if err != nil {
				logger.Error("failed to reload job", "err", err)
				return
			}
			job = reloaded
		}
		if err := runJob(ctx, out, job); err != nil {
			logger.Error("run failed", "err", err)
		}
	}
	if err := fw.Watch(files, rerun); err != nil {
		return err
	}
	fw.Start(ctx)

	logger.Info("watching for changes, press Ctrl+C to stop", "files", len(files))
	<-ctx.Done()
	return nil
}
