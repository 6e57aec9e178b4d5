// Package main provides the CLI entrypoint for hash-mapper.
//
// hash-mapper runs declarative, path driven mappers over YAML and JSON
// documents:
//   - normalize / denormalize map documents in either direction
//   - check validates a mapping file and reports diagnostics
//   - inspect lists mappers and their effective rules
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
