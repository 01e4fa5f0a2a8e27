package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo"
	"github.com/gologo-lang/gologo/internal/config"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/evaluator"
	"github.com/gologo-lang/gologo/pkg/runtime"
)

var (
	cfgFile string
	pretty  bool
)

var rootCmd = &cobra.Command{
	Use:   "gologo",
	Short: "gologo - a Logo turtle graphics interpreter",
	Long: `gologo interprets a small Logo dialect and renders the turtle's
drawing to SVG or PNG.

Commands:
  run    - execute a program and write the drawing
  check  - parse and validate without executing
  fmt    - print a program in canonical form
  ast    - dump the parsed AST as JSON
  repl   - interactive line-at-a-time session`,
	Version:       gologo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "human-readable diagnostics")
}

// loadConfig resolves the effective configuration, applying palette
// overrides as a side effect.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg.ApplyPalette()
	return cfg, nil
}

func newRuntime(cfg *config.Config) *runtime.Runtime {
	return runtime.New(
		runtime.WithCanvas(cfg.Canvas.Width, cfg.Canvas.Height),
		runtime.WithMaxSteps(cfg.Limits.MaxSteps),
	)
}

// reportError prints an execution error to stderr and returns the
// process exit code.
func reportError(err error) int {
	switch e := err.(type) {
	case *runtime.DiagnosticError:
		fmt.Fprintln(os.Stderr, errorStyle.Render(diagnostics.FormatDiagnostics(e.Diagnostics, pretty)))
		return 2
	case *evaluator.RuntimeError:
		fmt.Fprintln(os.Stderr, errorStyle.Render(diagnostics.FormatDiagnostic(e.Diag(), pretty)))
		return 3
	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return 1
	}
}
