// Package folder provides folding strategies for over-budget tool output.
//
// When an observation constraint decides that tool output exceeds its budget,
// a Folder decides HOW the excess is compressed. Separating the two keeps the
// "how much?" decision (constraint) independent from the "how?" decision
// (folder), which is what makes controlled ablation studies possible: hold
// the budget fixed and swap the folder, or vice versa.
//
// # Strategies
//
// Truncate:
//   - Keeps the first N lines, discards the rest
//   - Preserves locality (start of output) but destroys global structure
//   - Baseline / control arm for ablations
//
// HeadTail:
//   - Keeps the first and last portions, elides the middle
//   - Preserves locality and recency; suited to log-like output where the
//     tail carries the freshest state
//
// Structure:
//   - Extracts lines matching structural patterns (function and class
//     definitions, imports, markdown headers, separators)
//   - Gives the agent a navigable "table of contents" instead of an
//     arbitrary text window
//   - Remaining budget is head-filled with non-structural lines
//
// # Usage
//
// Folders are pure: each Fold call is a function of the content, the line
// budget, and the folder's immutable configuration. They hold no per-call
// state and are safe for concurrent use.
//
//	ht, err := folder.NewHeadTail(0.6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	compressed := ht.Fold(output, 50)
//
// Output is approximately budget-sized: every strategy appends a short
// notice telling the agent how much was hidden and how to navigate deeper,
// so the literal line count can exceed the budget by the notice length.
package folder
