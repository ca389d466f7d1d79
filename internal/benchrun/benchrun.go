// Package benchrun drives throughput benchmarks over the arithmetic
// boundary. A pool of workers calls one of the exported operations in a
// tight loop for a wall-clock duration, and the pooled counters are reduced
// into a Results record.
package benchrun

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ffi-playground/numffi/arith"
)

// CallFunc executes one operation for input n and returns its result. The
// result is accumulated into a sink so the call cannot be optimized away.
type CallFunc func(n uint32) uint64

// Results captures the outcome of one benchmark run.
type Results struct {
	RunID        string        `json:"runId"`
	Op           string        `json:"op"`
	Path         string        `json:"path"`
	Workers      int           `json:"workers"`
	TotalOps     int64         `json:"totalOps"`
	ElapsedTime  time.Duration `json:"elapsedTime"`
	OpsPerSecond float64       `json:"opsPerSecond"`
	LatencyNs    float64       `json:"latencyNs"`
	StartedAt    time.Time     `json:"startedAt"`
}

// NativeCall returns the pure-Go call path for the named operation.
func NativeCall(op string) (CallFunc, error) {
	switch op {
	case OpAdd:
		return func(n uint32) uint64 {
			return uint64(uint32(arith.Add(int32(n), int32(n))))
		}, nil
	case OpFactorial:
		return func(n uint32) uint64 {
			return arith.FactorialSat(n)
		}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

// Run executes the benchmark described by cfg using the given call path.
// Progress lines are written to out every few seconds until the duration
// expires or ctx is canceled.
func Run(ctx context.Context, cfg Config, call CallFunc, out io.Writer) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	endTime := startTime.Add(cfg.Duration)

	fmt.Fprintf(out, "Benchmark started at %v with %d workers\n", startTime.Format("15:04:05.000"), cfg.Workers)

	// Shared counters for all workers
	var totalOps int64
	var totalLatency int64

	benchCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var wg sync.WaitGroup

	// Channel to signal workers when to stop (for clean shutdown)
	stopChan := make(chan struct{})

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(benchCtx, call, cfg.MaxN, &totalOps, &totalLatency, stopChan, workerID)
		}(i)
	}

	// Progress reporting goroutine
	progressTicker := time.NewTicker(5 * time.Second)
	defer progressTicker.Stop()

	go func() {
		for {
			select {
			case <-progressTicker.C:
				currentOps := atomic.LoadInt64(&totalOps)
				elapsed := time.Since(startTime)
				currentOpsPerSec := float64(currentOps) / elapsed.Seconds()
				remaining := time.Until(endTime)
				if remaining > 0 {
					fmt.Fprintf(out, "Progress: %d ops, %.1f ops/sec, %v remaining\n",
						currentOps, currentOpsPerSec, remaining.Round(time.Second))
				}
			case <-benchCtx.Done():
				return
			}
		}
	}()

	// Wait for benchmark duration or context cancellation
	<-benchCtx.Done()

	close(stopChan)
	wg.Wait()

	actualElapsed := time.Since(startTime)
	finalOps := atomic.LoadInt64(&totalOps)
	finalLatency := atomic.LoadInt64(&totalLatency)

	if finalOps == 0 {
		return nil, fmt.Errorf("no operations completed")
	}

	return &Results{
		RunID:        uuid.NewString(),
		Op:           cfg.Op,
		Path:         cfg.Path,
		Workers:      cfg.Workers,
		TotalOps:     finalOps,
		ElapsedTime:  actualElapsed,
		OpsPerSecond: float64(finalOps) / actualElapsed.Seconds(),
		LatencyNs:    float64(finalLatency) / float64(finalOps),
		StartedAt:    startTime,
	}, nil
}

// sink keeps call results observable so the loop is not eliminated.
var sink atomic.Uint64

func runWorker(ctx context.Context, call CallFunc, maxN uint32, totalOps, totalLatency *int64, stopChan chan struct{}, workerID int) {
	// Create a local random source for this worker to avoid contention
	localRand := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	var localSink uint64

	for {
		select {
		case <-ctx.Done():
			sink.Add(localSink)
			return
		case <-stopChan:
			sink.Add(localSink)
			return
		default:
			// Int63n keeps maxN+1 representable even on 32-bit platforms.
			n := uint32(localRand.Int63n(int64(maxN) + 1))

			opStart := time.Now()
			localSink += call(n)
			opLatency := time.Since(opStart)

			atomic.AddInt64(totalOps, 1)
			atomic.AddInt64(totalLatency, opLatency.Nanoseconds())
		}
	}
}
