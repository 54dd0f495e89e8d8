package main

import (
	"os"

	"github.com/PolarWolf314/pm/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
