// Command gologo is the Logo interpreter CLI.
package main

import (
	"os"

	"github.com/gologo-lang/gologo/cmd/gologo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
