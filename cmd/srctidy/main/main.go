package main

import (
	"fmt"
	"os"

	"github.com/dmlevin/srctidy/cmd/srctidy"
	"github.com/dmlevin/srctidy/pkg/style"
)

func main() {
	rootCmd := srctidy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
