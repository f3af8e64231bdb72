package main

import (
	"os"

	"github.com/dshills/diffrec/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
