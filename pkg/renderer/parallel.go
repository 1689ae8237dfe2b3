package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RowCallback receives each finished row in completion order, on the
// goroutine that called Render. The row slice aliases the output buffer.
// Returning an error cancels the rest of the render.
type RowCallback func(y int, row []core.Color) error

// ParallelConfig contains configuration for parallel rendering
type ParallelConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// ParallelRaytracer renders a scene with a pool of scanline workers. The
// image is bit-identical to the sequential Render.
type ParallelRaytracer struct {
	scene     *scene.Scene
	config    ParallelConfig
	raytracer *Raytracer
	logger    core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(s *scene.Scene, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &ParallelRaytracer{
		scene:     s,
		config:    config,
		raytracer: NewRaytracer(s, integrator.NewWhittedIntegrator()),
		logger:    logger,
	}
}

// Render renders every row and returns the image with its statistics. When
// ctx is cancelled, or onRow fails, rows not yet started are skipped and the
// partial image is returned along with the error.
func (pr *ParallelRaytracer) Render(ctx context.Context, onRow RowCallback) (*ImageBuffer, RenderStats, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	buf := NewImageBuffer(pr.scene.Width, pr.scene.Height)
	pool := NewWorkerPool(pr.raytracer, buf, pr.config.NumWorkers)
	stats := RenderStats{
		Width:   buf.Width,
		Height:  buf.Height,
		Workers: pool.GetNumWorkers(),
	}

	pr.logger.Printf("Rendering %dx%d with %d workers\n", buf.Width, buf.Height, stats.Workers)

	pool.Start(ctx)
	for y := 0; y < buf.Height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	var renderErr error
	for i := 0; i < buf.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.Rows++
		stats.PrimaryRays += result.Rays

		if onRow != nil && renderErr == nil {
			if err := onRow(result.Y, buf.Row(result.Y)); err != nil {
				renderErr = fmt.Errorf("row callback: %w", err)
				cancel()
			}
		}
	}

	pool.Stop()

	stats.TotalPixels = stats.PrimaryRays
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		pr.logger.Printf("Render stopped after %d of %d rows: %v\n", stats.Rows, buf.Height, renderErr)
		return buf, stats, renderErr
	}

	pr.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return buf, stats, nil
}

// RenderParallel renders the scene with numWorkers scanline workers
// (0 = use CPU count), calling onRow, if non-nil, as rows finish
func RenderParallel(ctx context.Context, s *scene.Scene, numWorkers int, onRow RowCallback) (*ImageBuffer, RenderStats, error) {
	pr := NewParallelRaytracer(s, ParallelConfig{NumWorkers: numWorkers}, nil)
	return pr.Render(ctx, onRow)
}
