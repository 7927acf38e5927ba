package main

import (
	"os"

	"github.com/commitscope/commitscope/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
