// Command gmsbench runs the coloring, k-clique, and maximal-clique-
// enumeration kernels against a loaded or synthesized graph, reporting
// per-trial timings and optional verification results.
package main

import (
	"fmt"
	"os"

	"github.com/gmsgo/gms/cmd/gmsbench/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
