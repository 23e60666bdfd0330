// Package main is the single-binary entrypoint for sprachlog.
// Everything the tracker needs ships in this one binary.
package main

import "github.com/sprachlog/sprachlog/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
