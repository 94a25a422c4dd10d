/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package batch verifies many independent alignments concurrently.
//
// Every model operation in dxalign is pure and owns its output, so a batch
// needs no coordination beyond handing jobs to workers and collecting their
// results in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/bytesize"
	"dirpx.dev/dxalign/dxcore/model/cigar"
	"dirpx.dev/dxalign/dxcore/model/cost"
	"dirpx.dev/dxalign/dxcore/model/result"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

const tracerName = "dirpx.dev/dxalign/dxcore/batch"

// Outcome labels of jobsTotal.
const (
	outcomeOK       = "ok"
	outcomeFailed   = "failed"
	outcomeSkipped  = "skipped"
	outcomeCanceled = "canceled"
)

var (
	// jobsTotal counts verified jobs by outcome.
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dxalign_batch_jobs_total",
		Help: "Total alignments handled by batch verification, by outcome",
	}, []string{"outcome"})

	// jobDuration tracks the time to verify one alignment.
	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dxalign_batch_job_duration_seconds",
		Help:    "Time to verify one alignment in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})

	// alignmentColumns tracks the alignment length of each verified job.
	alignmentColumns = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dxalign_batch_alignment_columns",
		Help:    "Number of alignment columns per verified job",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	})
)

// ErrInputTooLarge is returned for a job whose sequences exceed
// Config.MaxInput.
var ErrInputTooLarge = errors.New("batch: input exceeds max_input")

// Job is one alignment to verify.
type Job struct {
	Cigar cigar.Cigar
	Ref   []byte
	Query []byte
}

// Result is the outcome of one Job. Err is nil, a *cigar.VerifyError,
// ErrInputTooLarge, or the context error when the job never ran.
type Result struct {
	Cost cost.Cost
	Err  error
}

// Verifier runs Cigar verification on a bounded pool of workers. It is safe
// for concurrent use.
type Verifier struct {
	cfg    Config
	logger *slog.Logger
	tracer trace.Tracer
}

// Option customizes a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider. The default is the global
// provider from otel.GetTracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(v *Verifier) {
		if tp != nil {
			v.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewVerifier validates cfg and returns a Verifier for it.
func NewVerifier(cfg Config, opts ...Option) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	v := &Verifier{
		cfg:    cfg,
		logger: slog.Default(),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Config returns the configuration of v.
func (v *Verifier) Config() Config {
	return v.cfg
}

// Run verifies every job and returns one Result per job, in input order.
//
// The returned error combines the failures of all jobs with multierr, each
// wrapped with its job index; errors.Is and multierr.Errors see through it.
// When ctx is canceled, jobs not yet started get ctx.Err() as their Result
// and the combined error includes ctx.Err() once. Jobs already running
// finish.
func (v *Verifier) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	workers := min(v.cfg.workers(), max(len(jobs), 1))

	ctx, span := v.tracer.Start(ctx, "batch.Verifier.Run",
		trace.WithAttributes(
			attribute.Int("jobs", len(jobs)),
			attribute.Int("workers", workers),
			attribute.String("regime", v.cfg.CostModel.Regime().String()),
			attribute.String("comparison", v.cfg.Comparison.String()),
		),
	)
	defer span.End()

	start := time.Now()
	v.logger.InfoContext(ctx, "batch_verify_start",
		slog.Int("jobs", len(jobs)),
		slog.Int("workers", workers),
		slog.String("cost_model", model.SafeString(&v.cfg.CostModel, false)),
	)

	results := make([]Result, len(jobs))
	work := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = v.verify(ctx, idx, jobs[idx])
			}
		}()
	}

	sent := 0
feed:
	for sent < len(jobs) {
		if ctx.Err() != nil {
			break
		}
		select {
		case work <- sent:
			sent++
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	wg.Wait()

	var err error
	failed := 0
	for i, r := range results[:sent] {
		if r.Err != nil {
			failed++
			err = multierr.Append(err, fmt.Errorf("job %d: %w", i, r.Err))
		}
	}
	if canceled := len(jobs) - sent; canceled > 0 {
		cerr := ctx.Err()
		for i := sent; i < len(jobs); i++ {
			results[i] = Result{Err: cerr}
		}
		jobsTotal.WithLabelValues(outcomeCanceled).Add(float64(canceled))
		err = multierr.Append(err, fmt.Errorf("%d jobs not started: %w", canceled, cerr))
	}

	duration := time.Since(start)
	span.SetAttributes(attribute.Int("failed", failed), attribute.Int("started", sent))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch verification failed")
	}
	v.logger.InfoContext(ctx, "batch_verify_done",
		slog.Int("jobs", len(jobs)),
		slog.Int("started", sent),
		slog.Int("failed", failed),
		slog.Duration("duration", duration),
	)
	return results, err
}

// verify runs one job and records its metrics.
func (v *Verifier) verify(ctx context.Context, idx int, job Job) Result {
	start := time.Now()
	defer func() { jobDuration.Observe(time.Since(start).Seconds()) }()

	if limit := v.cfg.MaxInput; limit > 0 {
		if n := bytesize.Size(len(job.Ref) + len(job.Query)); n > limit {
			jobsTotal.WithLabelValues(outcomeSkipped).Inc()
			v.logger.DebugContext(ctx, "batch_job_skipped",
				slog.Int("job", idx),
				slog.String("input", n.String()),
				slog.String("max_input", limit.String()),
			)
			return Result{Err: fmt.Errorf("%w: %s > %s", ErrInputTooLarge, n, limit)}
		}
	}

	alignmentColumns.Observe(float64(job.Cigar.Len()))
	c, err := v.cfg.Options().Verify(job.Cigar, v.cfg.CostModel, job.Ref, job.Query)
	if err != nil {
		jobsTotal.WithLabelValues(outcomeFailed).Inc()
		v.logger.DebugContext(ctx, "batch_job_failed",
			slog.Int("job", idx),
			slog.String("cigar", model.SafeString(&job.Cigar, false)),
			slog.String("error", err.Error()),
		)
		return Result{Err: err}
	}
	jobsTotal.WithLabelValues(outcomeOK).Inc()
	return Result{Cost: c}
}

// Record collects successful results into a result.Record under the
// configured cost model. Failed jobs are left out.
func (v *Verifier) Record(jobs []Job, results []Result) result.Record {
	rec := result.New(v.cfg.CostModel)
	for i, r := range results {
		if r.Err == nil && i < len(jobs) {
			rec.Add(jobs[i].Cigar, r.Cost)
		}
	}
	return rec
}
