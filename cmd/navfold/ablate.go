package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/navfold/internal/logging"
	"github.com/fyrsmithlabs/navfold/internal/profile"
	"github.com/fyrsmithlabs/navfold/internal/telemetry"
)

var (
	// ablateProfile restricts the run to one named preset
	ablateProfile string
	// ablateConfig points at a custom YAML profile spec
	ablateConfig string
	// ablateShow prints the folded content instead of the summary table
	ablateShow bool
)

var ablateCmd = &cobra.Command{
	Use:   "ablate [file]",
	Short: "Run tool output through each observation profile",
	Long: `Ablate reads tool output from a file (or stdin) and applies every
preset profile to it, printing a comparison of what each constraint
would let an agent see. Use --profile to run a single preset, --config
to run a custom profile spec, and --show to print the folded content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAblate,
}

func init() {
	ablateCmd.Flags().StringVar(&ablateProfile, "profile", "", "run only the named preset (minimal, standard, power, unconstrained)")
	ablateCmd.Flags().StringVar(&ablateConfig, "config", "", "path to a custom YAML profile spec")
	ablateCmd.Flags().BoolVar(&ablateShow, "show", false, "print the folded content for each selected profile")
}

func runAblate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	content, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	profiles, err := selectProfiles()
	if err != nil {
		return err
	}

	return ablate(cmd.Context(), cmd.OutOrStdout(), logger, profiles, content)
}

func newLogger() (*zap.Logger, error) {
	cfg := logging.NewDefaultConfig()
	cfg.Level = logLevel
	return logging.New(cfg)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func selectProfiles() ([]*profile.Profile, error) {
	if ablateConfig != "" {
		data, err := os.ReadFile(ablateConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", ablateConfig, err)
		}
		spec, err := profile.LoadSpec(data)
		if err != nil {
			return nil, err
		}
		p, err := spec.Build()
		if err != nil {
			return nil, err
		}
		return []*profile.Profile{p}, nil
	}

	if ablateProfile != "" {
		p, err := profile.ByName(ablateProfile)
		if err != nil {
			return nil, err
		}
		return []*profile.Profile{p}, nil
	}

	names := profile.Names()
	profiles := make([]*profile.Profile, 0, len(names))
	for _, name := range names {
		p, err := profile.ByName(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	foldedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("77"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func ablate(ctx context.Context, out io.Writer, logger *zap.Logger, profiles []*profile.Profile, content string) error {
	rows := make([][]string, 0, len(profiles)+1)
	rows = append(rows, []string{"PROFILE", "CONSTRAINT", "FOLDED", "LINES HIDDEN", "CHARS HIDDEN", "OUTPUT SIZE"})

	for _, p := range profiles {
		monitor := telemetry.NewMonitor(p.Constraint.Name(), telemetry.WithLogger(logger))
		result := p.Constraint.Apply(content)
		monitor.Observe(ctx, result)
		snap := monitor.Close(ctx)

		folded := passStyle.Render("no")
		if result.WasTruncated {
			folded = foldedStyle.Render("yes")
		}
		rows = append(rows, []string{
			p.Name,
			p.Constraint.Name(),
			folded,
			fmt.Sprintf("%d", snap.LinesHidden),
			fmt.Sprintf("%d", snap.CharsHidden),
			fmt.Sprintf("%d chars", len(result.Content)),
		})

		if ablateShow {
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("--- %s ---", p.Name)))
			fmt.Fprintln(out, result.Content)
			fmt.Fprintln(out)
		}
	}

	if !ablateShow {
		fmt.Fprintln(out, renderTable(rows))
	}
	return nil
}

// renderTable lays out rows with padded columns; the first row is the header.
func renderTable(rows [][]string) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			styled := cellStyle.Width(widths[i] + 2).Render(cell)
			if r == 0 {
				styled = headerStyle.Render(styled)
			}
			cells[i] = styled
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
