package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ffi-playground/numffi/arith"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two 32-bit signed integers",
	Long: `Adds two 32-bit signed integers and prints the sum. Overflow wraps in
two's complement, matching the exported add_numbers contract.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt32(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt32(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", arith.Add(a, b))
		return nil
	},
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a 32-bit signed integer: %w", s, err)
	}
	return int32(v), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
