// Package main provides the roster CLI.
package main

import "github.com/owenc21/ootp-roster-editor/internal/cli"

func main() {
	cli.Execute()
}
