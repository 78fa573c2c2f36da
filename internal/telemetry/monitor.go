package telemetry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/navfold/internal/constraint"
)

// Snapshot is the scalar view of one rollout's constraint behavior.
type Snapshot struct {
	RolloutID       string  `json:"rollout_id"`
	ConstraintName  string  `json:"constraint_name"`
	TruncationCount int     `json:"truncation_count"`
	LinesHidden     int     `json:"lines_hidden"`
	CharsHidden     int     `json:"chars_hidden"`
	OutputCount     int     `json:"output_count"`
	TruncationRate  float64 `json:"truncation_rate"`
}

// StepRecord is the per-step structured record kept for trajectory analysis.
type StepRecord struct {
	Step         int    `json:"step"`
	WasTruncated bool   `json:"was_truncated"`
	LinesHidden  int    `json:"lines_hidden"`
	CharsHidden  int    `json:"chars_hidden"`
	Folder       string `json:"folder,omitempty"`
}

// Monitor aggregates constraint results for a single rollout.
//
// The caller is responsible for sequencing observations per rollout, but
// the monitor is mutex-guarded and safe for concurrent use regardless.
type Monitor struct {
	mu             sync.Mutex
	rolloutID      string
	constraintName string
	truncations    int
	linesHidden    int
	charsHidden    int
	outputs        int
	steps          []StepRecord

	metrics *Metrics
	logger  *zap.Logger
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithMetrics attaches OTEL instruments; every observation is also
// recorded through them.
func WithMetrics(m *Metrics) MonitorOption {
	return func(mon *Monitor) { mon.metrics = m }
}

// WithLogger sets the logger for rollout events. Default: no-op.
func WithLogger(logger *zap.Logger) MonitorOption {
	return func(mon *Monitor) {
		if logger != nil {
			mon.logger = logger
		}
	}
}

// NewMonitor creates a monitor for one rollout under the named constraint.
// Each monitor gets a fresh rollout ID.
func NewMonitor(constraintName string, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		rolloutID:      uuid.NewString(),
		constraintName: constraintName,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RolloutID returns the monitor's rollout identifier.
func (m *Monitor) RolloutID() string { return m.rolloutID }

// Observe folds one constraint result into the rollout counters and
// appends its step record.
func (m *Monitor) Observe(ctx context.Context, res constraint.Result) {
	m.mu.Lock()
	step := m.outputs
	m.outputs++
	if res.WasTruncated {
		m.truncations++
		m.linesHidden += res.Metadata.LinesHidden
		m.charsHidden += res.Metadata.CharsHidden
	}
	m.steps = append(m.steps, StepRecord{
		Step:         step,
		WasTruncated: res.WasTruncated,
		LinesHidden:  res.Metadata.LinesHidden,
		CharsHidden:  res.Metadata.CharsHidden,
		Folder:       res.Metadata.Folder,
	})
	m.mu.Unlock()

	m.metrics.RecordObservation(ctx, m.constraintName, res)
	if res.WasTruncated {
		m.logger.Debug("observation truncated",
			zap.String("rollout_id", m.rolloutID),
			zap.Int("step", step),
			zap.String("folder", res.Metadata.Folder),
			zap.Int("lines_hidden", res.Metadata.LinesHidden),
			zap.Int("chars_hidden", res.Metadata.CharsHidden),
		)
	}
}

// Snapshot returns the current scalar counters. The truncation rate is
// zero when no outputs have been observed.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	rate := 0.0
	if m.outputs > 0 {
		rate = float64(m.truncations) / float64(m.outputs)
	}
	return Snapshot{
		RolloutID:       m.rolloutID,
		ConstraintName:  m.constraintName,
		TruncationCount: m.truncations,
		LinesHidden:     m.linesHidden,
		CharsHidden:     m.charsHidden,
		OutputCount:     m.outputs,
		TruncationRate:  rate,
	}
}

// Steps returns a copy of the per-step records in observation order.
func (m *Monitor) Steps() []StepRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]StepRecord, len(m.steps))
	copy(out, m.steps)
	return out
}

// Close records the rollout-level truncation ratio and logs the final
// snapshot. The monitor remains usable afterward, but a rollout normally
// ends here.
func (m *Monitor) Close(ctx context.Context) Snapshot {
	snap := m.Snapshot()
	m.metrics.RecordRollout(ctx, snap)
	m.logger.Info("rollout complete",
		zap.String("rollout_id", snap.RolloutID),
		zap.String("constraint", snap.ConstraintName),
		zap.Int("outputs", snap.OutputCount),
		zap.Int("truncations", snap.TruncationCount),
		zap.Float64("truncation_rate", snap.TruncationRate),
	)
	return snap
}
