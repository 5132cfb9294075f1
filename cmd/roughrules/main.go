/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for RoughRules. Loads whitespace-delimited decision
tables, induces decision rules with the covering, exhaustive or LEM2 algorithm, and
renders the rules grouped by order.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/roughrules/cmd/roughrules/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	logMaxFiles int
	noColor     bool
	inputPath   string

	// Induction
	algorithm    string
	strict       bool
	outputFormat string
	outputDir    string
	title        string

	// Comparison
	algorithms []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roughrules",
		Short: "RoughRules - decision rule induction from rough-set decision tables",
		Long: `RoughRules reads a decision table (one object per line, whitespace-separated
attribute values, decision in the last column) and induces minimal consistent decision
rules with the sequential covering, exhaustive or LEM2 algorithm.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "induction", "Log format (text, json, custom, induction)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty logs to the console only)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Decision table file")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))

	// induce
	induceCmd := &cobra.Command{
		Use:   "induce",
		Short: "Induce decision rules from a decision table",
		Long: `Induce decision rules from a decision table and print them grouped by order
(rule length). Reports can also be written to a directory as text, JSON, YAML or HTML.`,
		RunE: commands.RunInduce,
	}

	induceCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "covering", "Induction algorithm (covering, exhaustive, lem2)")
	induceCmd.Flags().BoolVar(&strict, "strict", false, "Fail when some rows are left unexplained by the rules")
	induceCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Report format (text, json, yaml, html)")
	induceCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for report files (empty prints to stdout)")
	induceCmd.Flags().StringVar(&title, "title", "Decision rules", "Report title")

	viper.BindPFlag("algorithm", induceCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("strict", induceCmd.Flags().Lookup("strict"))
	viper.BindPFlag("format", induceCmd.Flags().Lookup("format"))
	viper.BindPFlag("output", induceCmd.Flags().Lookup("output"))
	viper.BindPFlag("title", induceCmd.Flags().Lookup("title"))

	rootCmd.AddCommand(induceCmd)

	// compare
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms on the same table and compare the results",
		Long: `Induce rules with several algorithms in parallel over one decision table and
print the number of rules, orders and unexplained rows produced by each.`,
		RunE: commands.RunCompare,
	}

	compareCmd.Flags().StringSliceVar(&algorithms, "algorithms", []string{}, "Algorithms to compare (default: all)")
	viper.BindPFlag("algorithms", compareCmd.Flags().Lookup("algorithms"))

	rootCmd.AddCommand(compareCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-algorithms",
		Short: "List available induction algorithms",
		Long: `List the induction algorithms with a short description of how each one
selects its rules.`,
		Run: commands.ListAlgorithms,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate a decision table without inducing rules",
		Long: `Parse a decision table and report its size, concepts, symbol count and any
contradictory rows (identical conditions, different decisions).`,
		RunE: commands.RunCheck,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect",
		Short: "Print the encoded table and its symbol dictionary",
		Long: `Print the integer-encoded decision table together with the dictionary that
maps every code back to its original token.`,
		RunE: commands.RunInspect,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
