// Package telemetry aggregates observation-constraint metadata into
// rollout-level counters and OpenTelemetry metrics.
//
// The constraint core is pure and stateless; the only mutable state in the
// system lives here, owned by the caller that sequences one rollout. A
// Monitor consumes the Metadata of every constraint.Result observed during
// the rollout and maintains running counters:
//
//   - truncation count: outputs that were folded
//   - lines hidden / chars hidden: cumulative compression
//   - output count: total tool outputs processed
//   - truncation rate: truncations / outputs, zero when no outputs
//
// Snapshot() exposes the counters as scalars for eval dashboards;
// Steps() returns the per-step structured records for downstream
// trajectory analysis.
//
//	monitor := telemetry.NewMonitor(c.Name())
//	for _, output := range toolOutputs {
//	    res := c.Apply(output)
//	    monitor.Observe(ctx, res)
//	}
//	snap := monitor.Snapshot()
//
// Metrics are exported through the OTEL metric API when a Meter is
// supplied; without one, recording is a no-op and the Monitor still
// aggregates locally.
package telemetry
