package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gologo-lang/gologo/pkg/render"
)

var replOutput string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-at-a-time session",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		code := cmdRepl()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	replCmd.Flags().StringVarP(&replOutput, "output", "o", "", "write the drawing here on exit (.svg or .png)")
	rootCmd.AddCommand(replCmd)
}

func cmdRepl() int {
	cfg, err := loadConfig()
	if err != nil {
		return reportError(err)
	}

	rt := newRuntime(cfg)
	session := rt.NewSession(context.Background())

	fmt.Println(infoStyle.Render("gologo repl - :q quits, :state shows the turtle"))
	scanner := bufio.NewScanner(os.Stdin)
	line := 0
loop:
	for {
		fmt.Print(promptStyle.Render("> "))
		if !scanner.Scan() {
			break
		}
		line++
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case ":q", ":quit":
			break loop
		case ":state":
			t := session.Turtle()
			fmt.Println(infoStyle.Render(fmt.Sprintf(
				"x=%.2f y=%.2f heading=%.1f pen=%v color=%d segments=%d",
				t.XCor(), t.YCor(), t.Heading(), t.IsPenDown(), t.Color(), len(session.Segments()))))
			continue
		}

		if err := session.Eval(input, fmt.Sprintf("repl:%d", line)); err != nil {
			// The session survives errors; state is whatever the
			// failing command left behind.
			reportError(err)
		}
	}

	if replOutput != "" {
		canvas := render.Canvas{
			Width:      cfg.Canvas.Width,
			Height:     cfg.Canvas.Height,
			Background: cfg.BackgroundRGB(),
		}
		if err := render.Save(replOutput, canvas, session.Segments()); err != nil {
			return reportError(err)
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("wrote %d segment(s) to %s", len(session.Segments()), replOutput)))
	}
	return 0
}
