// librisctl is the operator CLI for Libris Core.
//
// It talks directly to the SQLite database, so it can provision accounts
// and demo data without the API server running.
package main

import (
	"os"

	"github.com/dastas/libris-core/cmd/librisctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
