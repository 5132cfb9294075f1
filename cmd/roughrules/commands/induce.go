/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: induce.go
Description: Induce command implementation for RoughRules. Runs the selected algorithm
over the input table and prints or writes the report.
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

// RunInduce executes one induction run
func RunInduce(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	config := createInductionConfig()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := reporting.ParseFormat(viper.GetString("format"))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine()
	eng.AddReporter(engine.NewLoggerReporter(logger))

	run, runErr := eng.Run(ctx, config)
	if run == nil {
		return runErr
	}

	report := reporting.NewReport(run, viper.GetString("title"))
	colors := !viper.GetBool("no_color")

	if dir := viper.GetString("output"); dir != "" {
		path, err := reporting.WriteReport(dir, report, format)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", map[string]interface{}{
			"run_id": run.ID,
			"path":   path,
			"format": string(format),
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	} else {
		renderer, err := reporting.NewRenderer(format, colors)
		if err != nil {
			return err
		}
		if err := renderer.Render(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}

	return runErr
}
