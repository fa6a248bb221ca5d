package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/hortensius/cljreader/internal/compiler"
	"github.com/hortensius/cljreader/internal/value"
	"github.com/hortensius/cljreader/reader"
)

var showRepr bool

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read every top-level form from a file or stdin and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&showRepr, "repr", false, "dump each form field-by-field via alecthomas/repr")
}

func runRead(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, ch := range cfg.DisableDispatch {
		reader.DisableDispatch(ch)
	}

	var src []byte
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	comp := compiler.NewDefaultState(cfg.Namespace)
	stream := reader.NewStringStream(string(src))
	for {
		form, err := reader.ReadWith(stream, false, reader.EOF, comp)
		if err != nil {
			return err
		}
		if form == reader.EOF {
			break
		}
		printForm(form)
	}
	return nil
}

func printForm(form value.Form) {
	if showRepr {
		repr.Println(form)
		return
	}
	fmt.Println(form.String())
}
