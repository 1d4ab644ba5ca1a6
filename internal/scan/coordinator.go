package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/nao1215/fangscan/internal/model"
	"github.com/nao1215/fangscan/internal/vampire"
	"golang.org/x/sync/errgroup"
)

// DetectFunc examines one number and returns its finding. Implementations
// must be safe for concurrent use; the default, vampire.Detect, is pure
// and therefore trivially safe.
type DetectFunc func(n uint64) model.Finding

// Coordinator handles concurrent scanning of a partitioned range.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We hold only configuration in the Coordinator, never
// scan state. One Scan call owns everything it allocates, so a Coordinator
// can be reused or shared without synchronization.
type Coordinator struct {
	// detect is applied to every number in the range.
	detect DetectFunc

	// chunkSize is the maximum count of numbers per chunk.
	chunkSize int

	// workers is the maximum number of concurrently scanned chunks.
	workers int

	// logger is used for scan-level logging.
	logger *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithChunkSize sets the maximum count of numbers per chunk.
// Default is 100 if not specified. Non-positive values are ignored.
func WithChunkSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithWorkers sets the maximum number of concurrently scanned chunks.
// Default is runtime.GOMAXPROCS(0). Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets a custom logger for scan progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithDetectFunc replaces the detector applied to each number.
// Nil is ignored, keeping the default.
func WithDetectFunc(fn DetectFunc) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.detect = fn
		}
	}
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		detect:    vampire.Detect,
		chunkSize: 100,
		workers:   runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// chunkResult is the output of a single chunk worker. Each worker owns its
// result exclusively until the coordinator's barrier, so no locking is
// involved.
type chunkResult struct {
	findings []model.Finding
	scanned  uint64
	err      error
}

// Scan runs the detector over every integer in the inclusive range
// [low, high] and returns the aggregated report.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it's simpler and errgroup handles the concurrency
// correctly. Each chunk gets its own goroutine, but only 'workers'
// goroutines run simultaneously. Results are recorded into a slice indexed
// by chunk, so the merged output is ordered by chunk regardless of
// completion order.
//
// Failure policy, explicit: once partitioning succeeds the returned report
// is never nil, and it carries every finding collected even when the error
// is non-nil. A panicking chunk is recorded and the remaining chunks keep
// running; cancellation stops workers cooperatively and marks the report
// interrupted. The error stored in report.Error is the same one returned.
func (c *Coordinator) Scan(ctx context.Context, low, high uint64) (*model.ScanReport, error) {
	chunks, err := Partition(low, high, c.chunkSize)
	if err != nil {
		return nil, err
	}

	c.logger.Info("starting scan",
		"low", low,
		"high", high,
		"total_chunks", len(chunks),
		"chunk_size", c.chunkSize,
		"workers", c.workers,
	)

	startTime := time.Now()

	report := model.NewScanReport(low, high)
	report.ChunkSize = c.chunkSize
	report.Workers = c.workers
	report.ChunkCount = len(chunks)

	results := make([]chunkResult, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				results[i] = chunkResult{err: ctx.Err()}
				return ctx.Err()
			default:
			}

			c.logger.Debug("scanning chunk",
				"chunk", chunk.Index+1,
				"total", len(chunks),
				"low", chunk.Low,
				"high", chunk.High,
			)

			res := c.scanChunk(ctx, chunk)
			results[i] = res

			if res.err != nil {
				if errors.Is(res.err, context.Canceled) || errors.Is(res.err, context.DeadlineExceeded) {
					// The group context is already done; propagate so
					// Wait reports the interruption.
					return res.err
				}
				c.logger.Warn("chunk failed",
					"chunk", chunk.Index+1,
					"error", res.err,
				)
				// Don't return the error to errgroup - we want the other
				// chunks to finish. The failure is recorded in results.
				return nil
			}

			return nil
		})
	}

	// Wait for all chunk workers to complete
	waitErr := g.Wait()

	var failures []error
	for _, res := range results {
		for _, finding := range res.findings {
			report.AddFinding(finding)
		}
		report.NumbersScanned += res.scanned

		if res.err == nil {
			continue
		}
		report.FailedChunks++
		if errors.Is(res.err, context.Canceled) || errors.Is(res.err, context.DeadlineExceeded) {
			// One cancellation error for the whole scan is enough; a
			// large range would otherwise join thousands of copies.
			report.Interrupted = true
			continue
		}
		failures = append(failures, res.err)
	}

	var scanErr error
	switch {
	case report.Interrupted:
		scanErr = fmt.Errorf("scan interrupted after %d of %d chunks: %w",
			len(chunks)-report.FailedChunks, len(chunks), waitErr)
	case len(failures) > 0:
		scanErr = errors.Join(failures...)
	}
	if scanErr != nil {
		report.Error = scanErr
		report.ErrorMessage = scanErr.Error()
	}

	report.Elapsed = time.Since(startTime)
	report.Summary = model.NewSummary(report)

	c.logger.Info("scan complete",
		"numbers_scanned", report.NumbersScanned,
		"vampires", report.VampireCount(),
		"failed_chunks", report.FailedChunks,
		"elapsed", report.Elapsed,
	)

	return report, scanErr
}

// scanChunk runs the detector over one chunk in ascending order.
// A panic in the detect function is recovered into the chunk's error so
// one bad chunk cannot take down the scan; findings collected before the
// panic or a cancellation stay in the result.
func (c *Coordinator) scanChunk(ctx context.Context, chunk Chunk) (res chunkResult) {
	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("chunk %d [%d, %d]: detector panic: %v",
				chunk.Index, chunk.Low, chunk.High, r)
		}
	}()

	for n := chunk.Low; ; n++ {
		if err := ctx.Err(); err != nil {
			res.err = err
			return res
		}

		if finding := c.detect(n); finding.IsVampire() {
			res.findings = append(res.findings, finding)
		}
		res.scanned++

		// Incrementing past High would wrap at the top of the uint64
		// domain, so the bound is checked before n advances.
		if n == chunk.High {
			break
		}
	}

	return res
}
