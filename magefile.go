//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/lintsum"
	binPath    = "./bin/lintsum"
)

// Default target - build the binary
var Default = Build

// Build builds the lintsum binary
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), date)

	fmt.Println("Building lintsum...")
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/lintsum"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("Built: %s\n", binPath)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("./bin")
}

// QA runs formatting, vet, tests and the self-hosted lint summary
func QA() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Test.All, Lint.Summary)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Summary pipes golangci-lint SARIF output through lintsum
func (Lint) Summary() error {
	mg.Deps(Build)
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}

	lint := exec.Command("golangci-lint", "run", "--output.sarif.path=stdout", "./...")
	summarize := exec.Command(binPath, "--mode", "lint")
	pipe, err := lint.StdoutPipe()
	if err != nil {
		return err
	}
	lint.Stderr = os.Stderr
	summarize.Stdin = pipe
	summarize.Stdout = os.Stdout
	summarize.Stderr = os.Stderr

	if err := summarize.Start(); err != nil {
		return err
	}
	if err := lintFailure(lint.Run()); err != nil {
		_ = summarize.Process.Kill()
		_ = summarize.Wait()
		return err
	}
	return summarize.Wait()
}

// lintFailure filters a golangci-lint run error. Exit status 1 means issues
// were found, which lintsum reports; anything else is a failed run.
func lintFailure(err error) error {
	var exitErr *exec.ExitError
	if err == nil || (errors.As(err, &exitErr) && exitErr.ExitCode() == 1) {
		return nil
	}
	return fmt.Errorf("golangci-lint: %w", err)
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return out
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return out
}
