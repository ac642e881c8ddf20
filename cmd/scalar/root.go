// Root command and global flags for the scalar CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scalar/internal/paths"
)

// Global flag values.
var (
	flagConfigDir     string
	flagType          string
	flagEnumTable     string
	flagCaseSensitive bool
)

// configDefaultType holds the default_type value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDefaultType string

var rootCmd = &cobra.Command{
	Use:   "scalar",
	Short: "scalar converts text to strongly typed values and back",
	Long: `scalar is a diagnostic front end for the strict conversion engine.
It parses booleans, fixed-width integers, floats, and table-defined
enumerations from text, and renders them back to canonical text, with
structured error reporting (error kind and byte offset) on failure.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDefaultType = cfg.GetString(cfgKeyDefaultType)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", "", "target type (bool, int8..int64, uint8..uint64, float32, float64, enum)")
	rootCmd.PersistentFlags().StringVar(&flagEnumTable, "enum", "", "enum table as name=value pairs, e.g. admin=1,user=2")
	rootCmd.PersistentFlags().BoolVar(&flagCaseSensitive, "case-sensitive", false, "match enum names byte-exactly instead of ASCII case-insensitively")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
}
