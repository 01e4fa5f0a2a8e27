package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo/pkg/runtime"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a program in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			os.Exit(reportError(err))
		}
		formatted, err := runtime.New().Format(string(source), args[0])
		if err != nil {
			os.Exit(reportError(err))
		}
		if fmtWrite {
			return os.WriteFile(args[0], []byte(formatted), 0o644)
		}
		fmt.Print(formatted)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}
