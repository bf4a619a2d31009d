//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/owenc21/ootp-roster-editor/internal/cli"
	"github.com/owenc21/ootp-roster-editor/internal/rostertest"
)

const (
	binGo      = "go"
	binaryName = "roster"
	binaryDir  = "bin"
	cmdDir     = "./cmd/roster"
	sampleDir  = "testdata"
	sampleFile = "sample_roster.csv"
)

// Build compiles the roster binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	fmt.Printf("building roster v%s\n", cli.Version)
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Sample writes a two-organization roster export to testdata/ for manual
// runs of the edit command.
func Sample() error {
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(sampleDir, sampleFile)
	if err := os.WriteFile(path, []byte(rostertest.Sample()), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
