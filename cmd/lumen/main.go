package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lumen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen call resolution finalizer",
	Long:  `Lumen finalizes recorded overload-resolution outcomes: bindings, type reconciliation, diagnostics and call checks`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(finalizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color tri-state against the output stream.
func colorEnabled(setting string, out *os.File) (bool, error) {
	switch setting {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(out), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", setting)
	}
}
