package main

import (
	"os"

	"github.com/crateforge/crateforge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
