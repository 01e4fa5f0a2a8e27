package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/runtime"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and validate a program without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			os.Exit(reportError(err))
		}
		diags := runtime.New().Check(string(source), args[0])
		if len(diags) > 0 {
			fmt.Fprintln(os.Stderr, errorStyle.Render(diagnostics.FormatDiagnostics(diags, pretty)))
			os.Exit(2)
		}
		fmt.Println(okStyle.Render("ok"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
