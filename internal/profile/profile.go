package profile

import (
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/navfold/internal/constraint"
	"github.com/fyrsmithlabs/navfold/internal/folder"
)

// ErrUnknownProfile is returned by ByName for unrecognized preset names.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile bundles a constraint with its accompanying rollout limits.
type Profile struct {
	Name            string
	Constraint      constraint.Constraint
	MaxIterations   int
	MaxOutputLength int
}

// Names lists the preset profiles in ablation-pressure order.
func Names() []string {
	return []string{"minimal", "standard", "power", "unconstrained"}
}

// Minimal applies maximum search pressure: a 50-line window with structural
// folding and a high iteration allowance. The agent sees only signatures
// and definitions and must learn precise, targeted queries.
func Minimal() *Profile {
	return &Profile{
		Name:            "minimal",
		Constraint:      mustConstraint(constraint.NewLineLimit(50, constraint.WithFolder(folder.NewStructure()))),
		MaxIterations:   100,
		MaxOutputLength: 2048,
	}
}

// Standard is the balanced training default: a 200-line window with head
// truncation.
func Standard() *Profile {
	return &Profile{
		Name:            "standard",
		Constraint:      mustConstraint(constraint.NewLineLimit(200, constraint.WithFolder(folder.NewTruncate()))),
		MaxIterations:   50,
		MaxOutputLength: 8192,
	}
}

// Power grants a generous 16K character budget (~4K tokens) with head/tail
// folding: the agent sees the beginning and end of every output.
func Power() *Profile {
	ht, err := folder.NewHeadTail(folder.DefaultHeadRatio)
	if err != nil {
		panic(err)
	}
	return &Profile{
		Name:            "power",
		Constraint:      mustConstraint(constraint.NewTokenBudget(16000, constraint.WithFolder(ht))),
		MaxIterations:   30,
		MaxOutputLength: 16384,
	}
}

// Unconstrained is the pure control group: no truncation at all.
func Unconstrained() *Profile {
	return &Profile{
		Name:            "unconstrained",
		Constraint:      constraint.NewUnconstrained(),
		MaxIterations:   50,
		MaxOutputLength: 8192,
	}
}

// ByName returns a freshly constructed preset by name.
func ByName(name string) (*Profile, error) {
	switch name {
	case "minimal":
		return Minimal(), nil
	case "standard":
		return Standard(), nil
	case "power":
		return Power(), nil
	case "unconstrained":
		return Unconstrained(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// mustConstraint unwraps constructor results for presets whose arguments
// are compile-time constants; a failure here is a programmer error.
func mustConstraint[C constraint.Constraint](c C, err error) C {
	if err != nil {
		panic(err)
	}
	return c
}
