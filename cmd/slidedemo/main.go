// Command slidedemo drives a slide-to-confirm button in a window, in a
// terminal, or headlessly from a JSON input script.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "slidedemo: %v\n", err)
		os.Exit(1)
	}
}
