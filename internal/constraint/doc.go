// Package constraint implements observation constraints for agent rollouts.
//
// An observation constraint decides how much of a tool's raw textual output
// the agent is allowed to see on each step. A constraint combines two
// decisions:
//
//  1. Budget — how much output may pass (line count or character count)
//  2. Folding — how to compress what exceeds the budget
//
// The budget lives here; the folding is delegated to an injected
// folder.Folder. Because every constraint is parameterized by its folder,
// budget and compression strategy vary orthogonally, which is the whole
// point: controlled ablation studies over either axis.
//
//	// Same 50-line budget, different folding strategies:
//	naive, _ := constraint.NewLineLimit(50)
//	smart, _ := constraint.NewLineLimit(50, constraint.WithFolder(folder.NewStructure()))
//
// # Constraints
//
//   - LineLimit: budgets by line count
//   - TokenBudget: budgets by character count as a cheap token proxy
//     (~4 chars/token, no real tokenizer)
//   - Unconstrained: passthrough baseline for control runs
//
// # Concurrency
//
// Apply is a pure function of the content and the constraint's immutable
// configuration. Constraints are constructed once per experiment and are
// safe for concurrent use without synchronization.
//
// All configuration validation happens at construction time; Apply never
// fails on any input, including the empty string.
package constraint
