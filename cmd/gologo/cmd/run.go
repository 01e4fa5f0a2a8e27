package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo/pkg/render"
)

var runOutput string

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Logo program and write the drawing",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		code := cmdRun(args[0])
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output image path (.svg or .png); overrides the configured default")
	rootCmd.AddCommand(runCmd)
}

func cmdRun(file string) int {
	cfg, err := loadConfig()
	if err != nil {
		return reportError(err)
	}

	source, err := os.ReadFile(file)
	if err != nil {
		return reportError(err)
	}

	rt := newRuntime(cfg)
	result, execErr := rt.Run(context.Background(), string(source), file)
	if execErr != nil {
		return reportError(execErr)
	}

	output := runOutput
	if output == "" {
		output = cfg.Output.Path
	}
	canvas := render.Canvas{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: cfg.BackgroundRGB(),
	}
	if err := render.Save(output, canvas, result.Segments); err != nil {
		return reportError(err)
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("wrote %d segment(s) to %s", len(result.Segments), output)))
	return 0
}
