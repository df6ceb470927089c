package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
)

// stpExt is the extension offered when completing input arguments.
const stpExt = "stp"

var allocatorHelp = map[string]string{
	sgmwcs.AllocLowestFree: "reuse the lowest free signal number",
	sgmwcs.AllocCounter:    "number signals by a running counter",
}

// completionCommand generates shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for stp2sgmwcs.

Input arguments complete to .stp files and --allocator to the known
numbering strategies.

  $ source <(stp2sgmwcs completion bash)
  $ stp2sgmwcs completion zsh > "${fpath[1]}/_stp2sgmwcs"
  $ stp2sgmwcs completion fish | source
  PS> stp2sgmwcs completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}

// completeSTPFiles offers .stp files for up to limit arguments. A limit of
// 0 means no limit.
func completeSTPFiles(limit int) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if limit > 0 && len(args) >= limit {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []cobra.Completion{stpExt}, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeAllocator offers the signal numbering strategies.
func completeAllocator(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	out := make([]cobra.Completion, 0, len(sgmwcs.Allocators))
	for _, name := range sgmwcs.Allocators {
		out = append(out, cobra.CompletionWithDesc(name, allocatorHelp[name]))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// registerOptionCompletions wires flag completions shared by the commands
// that translate an instance.
func registerOptionCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("allocator", completeAllocator)
	if cmd.Flags().Lookup("out-dir") != nil {
		_ = cmd.MarkFlagDirname("out-dir")
	}
}
