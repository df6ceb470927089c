package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stp2sgmwcs/pkg/convert"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		opts        convert.Options
		useCache    bool
		selectFiles bool
	)

	cmd := &cobra.Command{
		Use:   "convert <pattern>...",
		Short: "Convert STP files to SGMWCS relations",
		Long: `Convert STP files to SGMWCS relations.

Every file matched by the glob patterns is translated into three files:
edges_<name>, nodes_<name> and signals_<name>. They are written next to the
input unless --out-dir is given, and existing files are overwritten.

Files that look like previous outputs are skipped when a glob matches them.
Conversion stops at the first malformed file.

Quote patterns so the shell does not expand them:

  stp2sgmwcs convert 'instances/*.stp'`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSTPFiles(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Config.apply(cmd.Flags().Changed, &opts, &useCache)
			return c.runConvert(cmd.Context(), args, opts, useCache, selectFiles)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", "", "directory for output files (default: next to each input)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject node ids outside 1..N")
	cmd.Flags().StringVar(&opts.Allocator, "allocator", sgmwcs.AllocLowestFree,
		"signal numbering: "+strings.Join(sgmwcs.Allocators, ", "))
	cmd.Flags().StringVar(&opts.InfToken, "inf-token", sgmwcs.DefaultInfToken, "token written for infinite weights")
	cmd.Flags().BoolVar(&useCache, "cache", false, "reuse results of unchanged inputs")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results and recompute")
	cmd.Flags().BoolVarP(&selectFiles, "select", "s", false, "pick files interactively")
	registerOptionCompletions(cmd)

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, patterns []string, opts convert.Options, useCache, selectFiles bool) error {
	logger := loggerFromContext(ctx)

	files, err := matchAll(patterns)
	if err != nil {
		return err
	}
	logger.Debug("matched files", "count", len(files))

	if selectFiles {
		files, err = pickFiles(files)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			printDetail("No selection made")
			return nil
		}
	}

	if opts.Refresh && !useCache {
		printWarning("--refresh has no effect without --cache")
	}

	cc, err := c.newCache(ctx, useCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cc.Close()

	prog := newProgress(logger)
	runner := convert.NewRunner(cc, logger, opts)
	reports, err := runner.ConvertFiles(ctx, files)
	for _, rep := range reports {
		printReport(rep)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %d %s", len(reports), plural(len(reports), "file", "files")))
	return nil
}

// matchAll expands each pattern and drops files matched more than once.
func matchAll(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		matches, err := convert.Match(p)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func pickFiles(files []string) ([]string, error) {
	final, err := tea.NewProgram(newFileListModel(files)).Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(fileListModel)
	if !ok {
		return nil, nil
	}
	return fm.Selected(), nil
}

func printReport(rep *convert.Report) {
	printSuccess("%s", rep.Input)
	for _, p := range rep.Outputs.All() {
		printFile(p)
	}
	printStats(rep.Nodes, rep.Edges, rep.Stats.Signals, rep.CacheHit)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
