// Package main provides the salesinsights CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/salesinsights/internal/cli"

	// Register database adapters via init()
	_ "github.com/leapstack-labs/salesinsights/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/salesinsights/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/salesinsights/pkg/adapters/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
