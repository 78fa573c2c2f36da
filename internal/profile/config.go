package profile

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/navfold/internal/constraint"
	"github.com/fyrsmithlabs/navfold/internal/folder"
)

// envPrefix namespaces the environment overrides for profile specs.
// NAVFOLD_MAX_LINES=80 overrides the max_lines key, and so on.
const envPrefix = "NAVFOLD_"

// Spec is the on-disk form of a custom profile.
//
// Example:
//
//	name: tight-structural
//	constraint: line_limit
//	max_lines: 40
//	folder: structure
//	extra_patterns:
//	  - "^SECTION:"
//	max_iterations: 80
//	max_output_length: 4096
type Spec struct {
	Name            string   `koanf:"name"`
	Constraint      string   `koanf:"constraint"` // line_limit, token_budget, unconstrained
	MaxLines        int      `koanf:"max_lines"`
	MaxChars        int      `koanf:"max_chars"`
	Folder          string   `koanf:"folder"` // truncate, head_tail, structure
	HeadRatio       float64  `koanf:"head_ratio"`
	ExtraPatterns   []string `koanf:"extra_patterns"`
	MaxIterations   int      `koanf:"max_iterations"`
	MaxOutputLength int      `koanf:"max_output_length"`
}

// NewDefaultSpec returns a spec matching the standard preset.
func NewDefaultSpec() *Spec {
	return &Spec{
		Name:            "standard",
		Constraint:      "line_limit",
		MaxLines:        constraint.DefaultMaxLines,
		MaxChars:        constraint.DefaultMaxChars,
		Folder:          "truncate",
		HeadRatio:       folder.DefaultHeadRatio,
		MaxIterations:   50,
		MaxOutputLength: 8192,
	}
}

// LoadSpec parses a YAML profile spec and applies NAVFOLD_* environment
// overrides on top, following the file-then-env precedence of the rest of
// the stack. The content may be empty, in which case only defaults and
// environment apply.
func LoadSpec(content []byte) (*Spec, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse profile spec: %w", err)
		}
	}

	// Environment overrides: NAVFOLD_MAX_LINES -> max_lines.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	spec := NewDefaultSpec()
	if err := k.Unmarshal("", spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile spec: %w", err)
	}
	return spec, nil
}

// Build constructs the Profile described by the spec. Constraint and folder
// construction errors surface unchanged, so configuration mistakes fail
// here rather than at first use.
func (s *Spec) Build() (*Profile, error) {
	f, err := s.buildFolder()
	if err != nil {
		return nil, err
	}

	var c constraint.Constraint
	switch s.Constraint {
	case "line_limit":
		c, err = constraint.NewLineLimit(s.MaxLines, constraint.WithFolder(f))
	case "token_budget":
		c, err = constraint.NewTokenBudget(s.MaxChars, constraint.WithFolder(f))
	case "unconstrained":
		c = constraint.NewUnconstrained()
	default:
		return nil, fmt.Errorf("unknown constraint %q", s.Constraint)
	}
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:            s.Name,
		Constraint:      c,
		MaxIterations:   s.MaxIterations,
		MaxOutputLength: s.MaxOutputLength,
	}, nil
}

func (s *Spec) buildFolder() (folder.Folder, error) {
	switch s.Folder {
	case "", "truncate":
		return folder.NewTruncate(), nil
	case "head_tail":
		return folder.NewHeadTail(s.HeadRatio)
	case "structure":
		return folder.NewStructureFromStrings(s.ExtraPatterns)
	default:
		return nil, fmt.Errorf("unknown folder %q", s.Folder)
	}
}
