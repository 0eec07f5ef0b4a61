// Command omegactl filters, inspects and renders HOA automata.
//
// Input is read from the file named as the only argument, or from stdin when
// no file is given or the file is "-".
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
