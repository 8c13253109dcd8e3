// Package drill exposes the four exercises behind one Service so adapters get
// logging and metrics without the core packages knowing about either.
package drill

import (
	"context"
	"drills/pkg/binary"
	"drills/pkg/divide"
	"drills/pkg/dupes"
	"drills/pkg/logger"
	"drills/pkg/metrics"
	"drills/pkg/parity"
	"drills/pkg/serrors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Operation names, used as the "operation" metric attribute and log field.
const (
	OperationDuplicates = "duplicates"
	OperationBinary     = "binary"
	OperationParity     = "parity"
	OperationDivide     = "divide"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// service is the concrete Service. It only carries instruments; every call
// is delegated to the pure functions in pkg/.
type service struct {
	// operations counts calls by operation and outcome.
	operations metric.Int64Counter
	// duration records how long each call took, in seconds.
	duration metric.Float64Histogram
}

// New creates a Service whose instruments are registered on meter.
func New(meter metric.Meter) (Service, error) {
	operations, err := meter.Int64Counter("drills.operations",
		metric.WithDescription("Number of exercise operations by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("drills.operation.duration",
		metric.WithDescription("Time spent computing an exercise operation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &service{
		operations: operations,
		duration:   duration,
	}, nil
}

// ContainsDuplicate reports whether values repeats any element. values keeps
// its order.
func (s *service) ContainsDuplicate(ctx context.Context, values []int64) bool {
	defer s.observe(ctx, OperationDuplicates, time.Now(), nil)

	res := dupes.HasDuplicate(values)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "checked for duplicates", zap.Int64s("values", values), zap.Bool("result", res))
	}

	return res
}

// Binary renders n in base 2.
func (s *service) Binary(ctx context.Context, n uint64) string {
	defer s.observe(ctx, OperationBinary, time.Now(), nil)

	res := binary.Format(n)
	logger.Debug(ctx, "converted to binary", zap.Uint64("n", n), zap.String("result", res))

	return res
}

// IsEven reports whether n is even.
func (s *service) IsEven(ctx context.Context, n int64) bool {
	defer s.observe(ctx, OperationParity, time.Now(), nil)

	res := parity.IsEven(n)
	logger.Debug(ctx, "classified parity", zap.Int64("n", n), zap.Bool("even", res))

	return res
}

// Divide returns floor and ceiling of a/b. A zero divisor yields an error of
// kind divide.ErrDivisionByZero.
func (s *service) Divide(ctx context.Context, a, b int64) (q Quotients, err error) {
	defer func(start time.Time) { s.observe(ctx, OperationDivide, start, err) }(time.Now())

	floor, ceil, err := divide.FloorCeil(a, b)
	if err != nil {
		logger.Debug(ctx, "division rejected", zap.Int64("a", a), zap.Int64("b", b), zap.Error(err))

		return Quotients{}, fmt.Errorf("could not divide %d by %d: %w", a, b, err)
	}
	logger.Debug(ctx, "divided", zap.Int64("a", a), zap.Int64("b", b),
		zap.Int64("floor", floor), zap.Int64("ceil", ceil))

	return Quotients{Floor: floor, Ceil: ceil}, nil
}

func (s *service) observe(ctx context.Context, operation string, start time.Time, err error) {
	outcome := outcomeOK
	attrs := []attribute.KeyValue{attribute.String("operation", operation)}
	if err != nil {
		outcome = outcomeError
		attrs = append(attrs, attribute.String("kind", serrors.KindOf(err).Error()))
	}

	s.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs[0]))
	s.operations.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("outcome", outcome))...))
}
