// Command cljread reads Clojure-syntax forms from a file or stdin and
// prints the parsed form tree.
package main

import (
	"fmt"
	"os"

	"github.com/hortensius/cljreader/cmd/cljread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
