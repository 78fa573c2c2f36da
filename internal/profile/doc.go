// Package profile provides predefined experiment configurations for
// observation-constraint ablation studies.
//
// A Profile bundles a constraint with the rollout knobs that accompany it
// (iteration limit, output length cap). The presets are designed for
// factorial ablations:
//
//   - minimal:       50-line window + structural folding, maximum search pressure
//   - standard:      200-line window + head truncation, balanced default
//   - power:         16K character budget + head/tail folding, generous context
//   - unconstrained: no limiting, pure control group
//
// Every factory call constructs a fresh, independent bundle: two ablation
// arms never share constraint or folder instances.
//
// Custom profiles can be loaded from YAML (with NAVFOLD_* environment
// overrides) via LoadSpec and Spec.Build.
package profile
