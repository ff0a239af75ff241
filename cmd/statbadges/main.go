package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/statbadges/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
