package parallel

import (
	"context"
	"iter"
	"time"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rainkit/iterpar/errors"
	"github.com/rainkit/iterpar/internal"
	"github.com/rainkit/iterpar/logger"
)

// Evaluate receives a worker count, a slice, a task, and a combiner, divides
// the slice into min(threads, len(values)) partitions, and invokes the task
// for each partition in its own goroutine. Once all tasks have terminated,
// their results are passed to the combiner in partition order and its result
// is returned.
//
// The task sees its partition as a sequence over a view of values; no
// partition is copied. At least one worker runs: for an empty slice the task
// is invoked once with an empty sequence.
//
// Evaluate returns an error with code INVALID_ARGUMENT, without starting any
// goroutine, if threads < 1.
//
// If ctx is cancelled while Evaluate waits for its workers, Evaluate still
// waits for all of them and then returns an error with code CANCELLED. Each
// worker that was still running when cancellation was observed contributes
// one cancellation; the first is the returned error and the others are
// attached to it as suppressed errors.
//
// If one or more tasks return an error or panic, Evaluate waits for all
// workers and returns an error with code WORKER_FAILED whose cause is the
// failure of the left-most failing partition; other failures are attached as
// suppressed errors, or to the cancellation error if there is one. The
// combiner is not invoked when an error is returned.
func Evaluate[T, R, A any](
	ctx context.Context,
	threads int,
	values []T,
	task func(part iter.Seq[T]) (R, error),
	combine func(results iter.Seq[R]) A,
	opts ...Option,
) (A, error) {
	return evaluate(ctx, newOptions(opts), "evaluate", threads, values, task, combine)
}

func evaluate[T, R, A any](
	ctx context.Context,
	o *options,
	operation string,
	threads int,
	values []T,
	task func(iter.Seq[T]) (R, error),
	combine func(iter.Seq[R]) A,
) (result A, err error) {
	id := uuid.NewString()
	log := o.log.WithFields(logger.Fields(
		logger.FieldEvaluationID, id,
		logger.FieldOperation, operation,
	))
	ctx, span := o.tracerProvider.Tracer(instrumentationName).Start(ctx, "parallel.evaluate",
		trace.WithAttributes(
			attribute.String("parallel.operation", operation),
			attribute.String("parallel.evaluation_id", id),
			attribute.Int("parallel.threads", threads),
			attribute.Int("parallel.length", len(values)),
		))
	defer span.End()

	inst := o.instruments()
	start := time.Now()
	status := "ok"
	defer func() {
		attrs := metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		)
		inst.calls.Add(ctx, 1, attrs)
		inst.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ranges, err := workerRanges(threads, len(values))
	if err != nil {
		status = "invalid"
		log.Debug("rejected arguments", logger.ErrorFields(operation, err))
		return result, err
	}
	span.SetAttributes(attribute.Int("parallel.workers", len(ranges)))
	inst.workers.Add(ctx, int64(len(ranges)), metric.WithAttributes(attribute.String("operation", operation)))
	log.Debug("starting workers", logger.Fields(
		logger.FieldThreads, threads,
		logger.FieldWorkers, len(ranges),
		logger.FieldLength, len(values),
	))

	slots := make([]R, len(ranges))
	failures := make([]error, len(ranges))
	done := make([]chan struct{}, len(ranges))
	for i, r := range ranges {
		done[i] = make(chan struct{})
		part := seq.FromSlice(values[r.Low:r.High:r.High])
		go func() {
			defer func() {
				if p := internal.WrapPanic(recover()); p != nil {
					failures[i] = p
				}
				close(done[i])
			}()
			slots[i], failures[i] = task(part)
		}()
	}

	cancellations := join(ctx, done)

	if err = collect(cancellations, failures); err != nil {
		if len(cancellations) > 0 {
			status = "cancelled"
		} else {
			status = "failed"
		}
		log.Warn("evaluation failed", logger.Fields(
			logger.FieldError, err.Error(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return result, err
	}

	result = combine(seq.FromSlice(slots))
	log.Debug("workers joined", logger.DurationFields(operation, time.Since(start)))
	return result, nil
}

// join waits for every worker in index order. If ctx is cancelled during a
// wait, every worker that has not finished at that moment is recorded as a
// cancellation, and all remaining workers are then waited for regardless. A
// worker that has already finished is never reported as cancelled.
func join(ctx context.Context, done []chan struct{}) (cancellations []*errors.Error) {
	for i, d := range done {
		select {
		case <-d:
			continue
		default:
		}
		select {
		case <-d:
		case <-ctx.Done():
			cause := context.Cause(ctx)
			for j := i; j < len(done); j++ {
				select {
				case <-done[j]:
				default:
					cancellations = append(cancellations, errors.Cancelled(j, cause))
				}
			}
			for _, d := range done[i:] {
				<-d
			}
			return cancellations
		}
	}
	return nil
}

// collect folds the cancellations and task failures of one evaluation into a
// single error, or returns nil if there are none.
func collect(cancellations []*errors.Error, failures []error) error {
	var failed []*errors.Error
	for i, f := range failures {
		if f != nil {
			failed = append(failed, errors.WorkerFailed(i, f))
		}
	}

	var primary *errors.Error
	var rest []*errors.Error
	switch {
	case len(cancellations) > 0:
		primary, rest = cancellations[0], append(cancellations[1:], failed...)
	case len(failed) > 0:
		primary, rest = failed[0], failed[1:]
	default:
		return nil
	}
	for _, e := range rest {
		primary.AddSuppressed(e)
	}
	return primary
}
