/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Compare command implementation for RoughRules. Induces rules with several
algorithms in parallel and prints one summary line per algorithm.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/reporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunCompare induces rules with every requested algorithm and summarises the runs
func RunCompare(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine()
	eng.AddReporter(engine.NewLoggerReporter(logger))

	runs, err := eng.Compare(ctx, viper.GetString("input"), viper.GetStringSlice("algorithms"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %6s %7s %12s  %s\n", "algorithm", "rules", "orders", "unexplained", "duration")
	for _, run := range runs {
		fmt.Fprintf(out, "%-12s %6d %7d %12d  %s\n",
			run.Algorithm,
			len(run.Rules),
			len(reporting.GroupByScale(run.Rules)),
			len(run.Unexplained),
			run.Duration)
	}

	return nil
}
