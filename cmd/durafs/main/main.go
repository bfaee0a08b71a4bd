package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/durafs/cmd/durafs"
	"github.com/arthur-debert/durafs/pkg/ui/styles"
)

func main() {
	rootCmd := durafs.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
