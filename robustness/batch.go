// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// batch.go — parallel evaluation of independent formulas over one trace.
//
// Evaluations share nothing mutable: the trace and the formulas are
// read-only, every job owns its evaluator. EvaluateAll is therefore a plain
// errgroup fan-out with one span per job.

package robustness

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/signal"
	stltrace "github.com/katalvlaran/signaltl/trace"
)

// Job names one formula of a batch.
type Job struct {
	Name    string
	Formula formula.Formula
}

// Result is the robustness signal of one Job.
type Result struct {
	Name       string
	Robustness *signal.Signal
}

// EvaluateAll evaluates every job over tr concurrently and returns the
// results in job order. The first failing job cancels the rest; its error is
// returned prefixed with the job name. WithConcurrency bounds the number of
// jobs in flight.
//
// Errors:
//   - ctx.Err() — ctx was cancelled before every job started.
//   - any Evaluate error, wrapped as "job <name>: <err>".
func EvaluateAll(ctx context.Context, tr *stltrace.Trace, jobs []Job, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	tracer := o.tracerProvider.Tracer(instrumentationName)

	ctx, span := tracer.Start(ctx, "Robustness.EvaluateAll",
		trace.WithAttributes(
			attribute.Int("jobs", len(jobs)),
			attribute.Int("concurrency", o.concurrency),
		),
	)
	defer span.End()

	results := make([]Result, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rho, err := evaluateJob(gCtx, tracer, tr, job, &o)
			if err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
			results[i] = Result{Name: job.Name, Robustness: rho}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Warn("batch evaluation failed", slog.String("error", err.Error()))

		return nil, err
	}
	o.logger.Debug("batch evaluation done", slog.Int("jobs", len(jobs)))

	return results, nil
}

func evaluateJob(ctx context.Context, tracer trace.Tracer, tr *stltrace.Trace, job Job, o *Options) (*signal.Signal, error) {
	_, span := tracer.Start(ctx, "Robustness.Evaluate",
		trace.WithAttributes(attribute.String("job", job.Name)),
	)
	defer span.End()
	if job.Formula != nil {
		span.SetAttributes(
			attribute.String("formula", job.Formula.String()),
			attribute.Int("depth", formula.Depth(job.Formula)),
		)
	}

	rho, err := evaluate(job.Formula, tr, o)
	o.count(job.Formula, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(attribute.Int("samples", rho.Len()))

	return rho, nil
}
