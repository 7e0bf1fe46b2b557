package main

import (
	"fmt"
	"os"

	"github.com/inkpress/inkpress-admin/cmd/commands"
	"github.com/inkpress/inkpress-admin/internal/cli"
)

// version is set during build with -ldflags
var version = "dev"

func main() {
	ctx := cli.NewCommandContext()
	if err := commands.NewRootCommand(ctx, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
