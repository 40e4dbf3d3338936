// Command cflo-demo ships sample records through the cflo transport to a
// configurable backend.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
