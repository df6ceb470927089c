package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stp2sgmwcs/pkg/convert"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		opts        convert.Options
		showSignals bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show instance and translation statistics",
		Long: `Parse one STP file, translate it in memory and print what the conversion
would produce. Nothing is written.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSTPFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Config.apply(cmd.Flags().Changed, &opts, nil)
			return runInspect(args[0], opts, showSignals)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject node ids outside 1..N")
	cmd.Flags().StringVar(&opts.Allocator, "allocator", sgmwcs.AllocLowestFree,
		"signal numbering: "+strings.Join(sgmwcs.Allocators, ", "))
	cmd.Flags().StringVar(&opts.InfToken, "inf-token", sgmwcs.DefaultInfToken, "token written for infinite weights")
	cmd.Flags().BoolVar(&showSignals, "signals", false, "list the signal table")
	registerOptionCompletions(cmd)

	return cmd
}

func runInspect(path string, opts convert.Options, showSignals bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	in, err := stp.ReadFile(path, stp.ReadOptions{Strict: opts.Strict})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	res, err := sgmwcs.Translate(in, sgmwcs.Options{Allocator: opts.Allocator, InfToken: opts.InfToken})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Println(StyleTitle.Render(path))
	fmt.Println(statsTable(in, res).Render())
	if showSignals {
		printNewline()
		fmt.Println(signalsTable(res).Render())
	}
	return nil
}

// statsTable summarizes an instance next to its translation.
func statsTable(in *stp.Instance, res *sgmwcs.Result) *table.Table {
	s := res.Stats()
	rows := [][]string{
		{"Instance", "nodes", strconv.Itoa(in.NodeCount)},
		{"", "edges", strconv.Itoa(in.EdgeCount)},
		{"", "terminals", strconv.Itoa(len(in.Terminals))},
		{"", "coordinates", strconv.Itoa(len(in.Coords))},
		{"SGMWCS", "edge records", strconv.Itoa(s.EdgeRecords)},
		{"", "node records", strconv.Itoa(s.NodeRecords)},
		{"", "fallbacks", strconv.Itoa(s.Fallbacks)},
		{"", "signals", strconv.Itoa(s.Signals)},
		{"", "edge signals", strconv.Itoa(s.EdgeSignals)},
		{"", "terminal signals", strconv.Itoa(s.TerminalSignals)},
		{"", "infinite", strconv.Itoa(s.Infinite)},
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Metric", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return StyleTitle
			case col == 2:
				return StyleNumber
			}
			return StyleValue
		})
}

// signalsTable lists every signal in output order. Infinite weights are
// highlighted.
func signalsTable(res *sgmwcs.Result) *table.Table {
	rows, inf := signalRows(res)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Signal", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1 && row < len(inf) && inf[row]:
				return StyleWarning
			}
			return StyleValue
		})
}

// signalRows returns the table rows and, per row, whether the weight is infinite.
func signalRows(res *sgmwcs.Result) ([][]string, []bool) {
	var rows [][]string
	var inf []bool
	for id, w := range res.Signals.All() {
		rows = append(rows, []string{id, w.Format(res.InfToken())})
		inf = append(inf, w.IsInf())
	}
	return rows, inf
}
