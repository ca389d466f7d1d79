package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "numffi",
	Short: "Arithmetic across the C ABI boundary",
	Long: `numffi exercises a pair of C-ABI numeric functions (add_numbers, factorial)
implemented in Go, and benchmarks the native and cgo call paths against
each other.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
