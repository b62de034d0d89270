// Command addrdebug runs the address sample walkthrough: it round-trips a
// fixed set of search-ready records through one-row CSV files and prints
// what comes back. All failures are reported and swallowed; the command
// always exits 0.
package main

import (
	"os"

	"github.com/Sepsepi/blakeaddr/internal/diag"
)

func main() {
	diag.New(os.Stdout, ".").Run()
}
