package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/paybatch/internal/cli"
	"github.com/rshade/paybatch/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the root command and returns the process exit code. Errors
// that do not carry an exit code have not been reported yet and are printed
// to errOut.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
