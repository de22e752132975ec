// Command eca compiles and evolves binary and ternary elementary cellular
// automata.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("eca: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
