// Package main is the entry point for the dailies CLI.
package main

import "github.com/mesh-intelligence/dailies/internal/cli"

func main() {
	cli.Execute()
}
