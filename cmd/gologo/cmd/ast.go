package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/runtime"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Dump the parsed AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			os.Exit(reportError(err))
		}
		program, diags := runtime.New().Parse(string(source), args[0])
		if len(diags) > 0 {
			fmt.Fprintln(os.Stderr, errorStyle.Render(diagnostics.FormatDiagnostics(diags, pretty)))
			os.Exit(2)
		}
		out, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			os.Exit(reportError(err))
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
