package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by build flags; see go-dws's cmd/dwscript/cmd/root.go
// for the convention this follows.
var Version = "0.1.0-dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "cljread",
	Short:   "Read Clojure-syntax forms and print their parsed structure",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
