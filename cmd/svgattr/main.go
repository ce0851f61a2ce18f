// Command svgattr generates and exercises the SVG attribute classifier.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/svgattr/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "svgattr:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
