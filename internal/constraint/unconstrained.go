package constraint

// Unconstrained passes everything through unchanged. It is the control
// arm for ablation studies: no folder is ever invoked, no budget applies.
type Unconstrained struct{}

// NewUnconstrained creates the passthrough constraint.
func NewUnconstrained() *Unconstrained {
	return &Unconstrained{}
}

// Name returns the constraint identifier.
func (*Unconstrained) Name() string { return "unconstrained" }

// Apply returns the content unchanged with only the total character count
// recorded.
func (*Unconstrained) Apply(content string) Result {
	return Result{
		Content:      content,
		WasTruncated: false,
		Metadata: Metadata{
			TotalChars: len(content),
		},
	}
}

// String implements fmt.Stringer for experiment logs.
func (*Unconstrained) String() string { return "Unconstrained()" }
