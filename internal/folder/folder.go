package folder

// Folder compresses content that exceeds an observation budget.
//
// Fold receives the full, untruncated output and a target line budget, and
// returns a compressed rendering that fits approximately within the budget
// (plus a trailing notice). Implementations must be pure functions of their
// inputs and configuration.
type Folder interface {
	// Fold compresses content to approximately budgetLines lines.
	Fold(content string, budgetLines int) string
	// Name returns the strategy identifier reported in constraint metadata.
	Name() string
}
