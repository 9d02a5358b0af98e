package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pgavlin/starlark-go/starlark"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var serr *starlark.EvalError
		if errors.As(err, &serr) {
			fmt.Fprint(os.Stderr, serr.Backtrace())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
