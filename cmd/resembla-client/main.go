// Command resembla-client sends each argument as a query to a Resembla
// server and prints the matching texts.
//
//	resembla-client <query>...
package main

import (
	"os"

	"github.com/tuem/resembla/internal/cmd"
	"github.com/tuem/resembla/internal/config"
)

func main() {
	os.Exit(cmd.RunFind(config.Load(), os.Args[1:], os.Stdout, os.Stderr))
}
