//go:build mage

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// commitVar is the linker path of the revision printed by `dailies version`.
const commitVar = "github.com/mesh-intelligence/dailies/pkg/dailies.Commit"

// Build compiles bin/dailies, stamped with the current git revision.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binaryDir, binaryName)
	return sh.RunV(binGo, "build", "-trimpath", "-ldflags", ldflags(), "-o", out, cmdDir)
}

// Install puts the stamped binary in GOPATH/bin via go install.
func Install() error {
	return sh.RunV(binGo, "install", "-trimpath", "-ldflags", ldflags(), cmdDir)
}

// Clean removes bin/ (binary and coverage profile).
func Clean() error {
	mg.Deps(cleanCache)
	return os.RemoveAll(binaryDir)
}

func cleanCache() error {
	return sh.Run(binGo, "clean", "-testcache")
}

// ldflags strips debug info and sets the commit. Outside a git checkout
// the binary keeps the default "unknown".
func ldflags() string {
	flags := "-s -w"
	if rev, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil && strings.TrimSpace(rev) != "" {
		flags += " -X " + commitVar + "=" + strings.TrimSpace(rev)
	}
	return flags
}
