package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <value>",
	Short: "Parse text as the target type and print the canonical value",
	Long: `Parse validates the given text against the target type's strict
grammar and prints the resulting value in canonical form. For --type
enum the mapped table value is printed. Conversion failures report the
error kind and byte offset and exit with status 1.`,
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
			value, err := decodeEnum(input, entries)
			if err != nil {
				return err
			}
			fmt.Println(value)
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
