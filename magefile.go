//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binPath = "bin/unitycheck"

// Build builds the unitycheck binary with version metadata.
func Build() error {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/firmware-ci/unitycheck/internal/version.Version=%s "+
			"-X github.com/firmware-ci/unitycheck/internal/version.CommitHash=%s "+
			"-X github.com/firmware-ci/unitycheck/internal/version.BuildDate=%s",
		version, commit, time.Now().UTC().Format(time.RFC3339))
	return sh.Run("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/unitycheck")
}

// Test runs the test suite.
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.Run("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}
