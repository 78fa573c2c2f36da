package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fyrsmithlabs/navfold/internal/constraint"
)

// InstrumentationName is the name used for OTEL instrumentation.
const InstrumentationName = "github.com/fyrsmithlabs/navfold/internal/telemetry"

// Metrics provides OpenTelemetry metrics for observation constraints.
type Metrics struct {
	outputsTotal     metric.Int64Counter
	truncationsTotal metric.Int64Counter
	linesHiddenTotal metric.Int64Counter
	charsHiddenTotal metric.Int64Counter

	truncationRatio metric.Float64Histogram

	// initialized tracks if instruments were successfully created
	initialized bool
}

// NewMetrics creates a new Metrics instance with the provided meter.
// If meter is nil, uses the global meter provider.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.Meter(InstrumentationName)
	}

	m := &Metrics{}
	var err error

	m.outputsTotal, err = meter.Int64Counter(
		"navfold.outputs.total",
		metric.WithDescription("Total tool outputs processed through a constraint"),
		metric.WithUnit("{output}"),
	)
	if err != nil {
		return nil, err
	}

	m.truncationsTotal, err = meter.Int64Counter(
		"navfold.truncations.total",
		metric.WithDescription("Total tool outputs that were folded"),
		metric.WithUnit("{output}"),
	)
	if err != nil {
		return nil, err
	}

	m.linesHiddenTotal, err = meter.Int64Counter(
		"navfold.lines.hidden.total",
		metric.WithDescription("Total lines hidden across all truncations"),
		metric.WithUnit("{line}"),
	)
	if err != nil {
		return nil, err
	}

	m.charsHiddenTotal, err = meter.Int64Counter(
		"navfold.chars.hidden.total",
		metric.WithDescription("Total characters hidden across all truncations"),
		metric.WithUnit("{char}"),
	)
	if err != nil {
		return nil, err
	}

	m.truncationRatio, err = meter.Float64Histogram(
		"navfold.truncation.ratio",
		metric.WithDescription("Per-rollout fraction of outputs that were folded"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0),
	)
	if err != nil {
		return nil, err
	}

	m.initialized = true
	return m, nil
}

// RecordObservation records one constrained tool output.
// Rollout IDs are intentionally omitted from metric attributes to prevent
// cardinality explosion; per-rollout correlation lives in structured logs
// and step records.
func (m *Metrics) RecordObservation(ctx context.Context, constraintName string, res constraint.Result) {
	if m == nil || !m.initialized {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("constraint", constraintName),
	)
	m.outputsTotal.Add(ctx, 1, attrs)
	if !res.WasTruncated {
		return
	}
	truncAttrs := metric.WithAttributes(
		attribute.String("constraint", constraintName),
		attribute.String("folder", res.Metadata.Folder),
	)
	m.truncationsTotal.Add(ctx, 1, truncAttrs)
	m.linesHiddenTotal.Add(ctx, int64(res.Metadata.LinesHidden), truncAttrs)
	m.charsHiddenTotal.Add(ctx, int64(res.Metadata.CharsHidden), truncAttrs)
}

// RecordRollout records the rollout-level truncation ratio.
func (m *Metrics) RecordRollout(ctx context.Context, snap Snapshot) {
	if m == nil || !m.initialized {
		return
	}
	m.truncationRatio.Record(ctx, snap.TruncationRate, metric.WithAttributes(
		attribute.String("constraint", snap.ConstraintName),
	))
}
