package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scalar/pkg/convert"
)

var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Render a value as canonical text for the target type",
	Long: `Format is the inverse direction. For scalar types the input is
parsed and re-rendered in canonical form (so "  +007 " becomes "7").
For --type enum the input is a table VALUE and the matching canonical
NAME is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		target, err := resolveTargetType()
		if err != nil {
			return err
		}

		if target == targetEnum {
			entries, err := parseEnumTable(flagEnumTable)
			if err != nil {
				return err
			}
			name, err := convert.FormatEnum(input, entries)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		}

		out, err := convertScalar(target, input)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
