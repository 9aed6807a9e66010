package main

import (
	"os"

	"github.com/ariel-frischer/clkpr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
