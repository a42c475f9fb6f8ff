package renderer

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID       int
	renderer *TileRenderer
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   renderer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every task into img and blocks until all tiles are done or
// ctx is cancelled. onResult, if non-nil, is called from the calling
// goroutine once per finished tile.
func (wp *WorkerPool) Run(ctx context.Context, tasks []TileTask, img *image.RGBA, onResult func(TileResult)) error {
	g, ctx := errgroup.WithContext(ctx)

	taskQueue := make(chan TileTask)
	resultQueue := make(chan TileResult, len(tasks)) // workers never block on results

	g.Go(func() error {
		defer close(taskQueue)
		for _, task := range tasks {
			select {
			case taskQueue <- task:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		worker := &Worker{ID: i, renderer: wp.renderer}
		g.Go(func() error {
			return worker.run(ctx, taskQueue, resultQueue, img)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(resultQueue)
	}()

	for result := range resultQueue {
		if onResult != nil {
			onResult(result)
		}
	}

	return <-done
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, taskQueue <-chan TileTask, resultQueue chan<- TileResult, img *image.RGBA) error {
	for task := range taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Tiles never overlap, so writing into the shared image is safe
		stats := w.renderer.RenderTileBounds(task.Tile.Bounds, img)

		resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
	return nil
}
