// Command resembla-ondemand asks a Resembla server to score a list of
// candidate texts against a query.
//
//	resembla-ondemand <query> [candidate]...
package main

import (
	"os"

	"github.com/tuem/resembla/internal/cmd"
	"github.com/tuem/resembla/internal/config"
)

func main() {
	os.Exit(cmd.RunEval(config.Load(), os.Args[1:], os.Stdout, os.Stderr))
}
