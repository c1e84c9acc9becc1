//go:build mage

// Package main provides build targets for the dailies project using Mage.
//
// Usage:
//
//	mage build       Compile bin/dailies with the commit stamped in
//	mage install     go install dailies with the commit stamped in
//	mage clean       Remove build artifacts
//	mage test:all    Run all tests
//	mage test:unit   Run tests without the CLI package
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Write coverage to bin/coverage.out and print a summary
//	mage lint        Run format and vet checks, then golangci-lint
//	mage stats       Print Go LOC and documentation word counts
package main

const (
	binGo      = "go"
	binaryName = "dailies"
	binaryDir  = "bin"
	cmdDir     = "./cmd/dailies"
)
