package main

import (
	"fmt"
	"os"

	"github.com/mandelsoft/facets/cmds/mmctl/app"
)

func main() {
	cmd := app.New()
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		log.Debug("command failed", "error", err.Error())
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
