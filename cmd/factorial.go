package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ffi-playground/numffi/arith"
)

// factorialCmd represents the factorial command
var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n! for a 32-bit unsigned integer",
	Long: `Computes n! and prints it. Defined for n in [0, 20]; larger n would
overflow the 64-bit result and is reported as an error rather than a
truncated value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseUint32(args[0])
		if err != nil {
			return err
		}
		result, err := arith.Factorial(n)
		if err != nil {
			return fmt.Errorf("factorial(%d): %w", n, err)
		}
		fmt.Printf("%d\n", result)
		return nil
	},
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a 32-bit unsigned integer: %w", s, err)
	}
	return uint32(v), nil
}

func init() {
	rootCmd.AddCommand(factorialCmd)
}
