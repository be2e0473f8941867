package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "flowlens",
		Short:   "Flowlens — flow recording analyzer and report generator",
		Version: version,
	}

	root.AddCommand(
		newAnalyzeCmd(),
		newExtractCmd(),
		newCacheCmd(),
		newRunsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
