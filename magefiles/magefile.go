//go:build mage

// Package main provides build targets for the roster editor using Mage.
//
// Usage:
//
//	mage build          Compile the roster binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests, skipping the end-to-end CLI package
//	mage test:cover     Run all tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install roster to GOPATH/bin
//	mage sample         Write a small roster export to testdata/
//	mage stats          Print Go LOC and documentation word counts
package main
