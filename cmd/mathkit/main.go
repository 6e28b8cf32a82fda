package main

import (
	"os"

	"github.com/msto63/mathkit/cmd/mathkit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
