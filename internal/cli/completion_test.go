package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
)

func directive(d cobra.ShellCompDirective) string {
	return fmt.Sprintf(":%d\n", d)
}

func TestCompleteAllocator(t *testing.T) {
	for _, name := range []string{"convert", "inspect"} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, cobra.ShellCompRequestCmd, name, "--allocator", "")
			if err != nil {
				t.Fatalf("complete error: %v", err)
			}
			for _, a := range sgmwcs.Allocators {
				if !strings.Contains(out, a+"\t") {
					t.Errorf("missing allocator %q in:\n%s", a, out)
				}
			}
			if !strings.Contains(out, directive(cobra.ShellCompDirectiveNoFileComp)) {
				t.Errorf("want NoFileComp directive in:\n%s", out)
			}
		})
	}
}

func TestCompleteSTPFiles(t *testing.T) {
	tests := []struct {
		args []string
		want cobra.ShellCompDirective
	}{
		{[]string{"convert", ""}, cobra.ShellCompDirectiveFilterFileExt},
		{[]string{"convert", "a.stp", "b.stp", ""}, cobra.ShellCompDirectiveFilterFileExt},
		{[]string{"inspect", ""}, cobra.ShellCompDirectiveFilterFileExt},
		{[]string{"inspect", "a.stp", ""}, cobra.ShellCompDirectiveNoFileComp},
		{[]string{"visualize", ""}, cobra.ShellCompDirectiveFilterFileExt},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{cobra.ShellCompRequestCmd}, tt.args...)...)
			if err != nil {
				t.Fatalf("complete error: %v", err)
			}
			if !strings.Contains(out, directive(tt.want)) {
				t.Errorf("want directive %d in:\n%s", tt.want, out)
			}
			if tt.want == cobra.ShellCompDirectiveFilterFileExt && !strings.Contains(out, stpExt+"\n") {
				t.Errorf("want %q extension in:\n%s", stpExt, out)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "completion", shell)
		if err != nil {
			t.Fatalf("completion %s error: %v", shell, err)
		}
		if !strings.Contains(out, appName) {
			t.Errorf("completion %s output does not mention %s", shell, appName)
		}
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want error")
	}
}
