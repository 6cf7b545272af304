package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-es-collections/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}
