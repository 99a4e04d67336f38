package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/taxaudit/assessment-calculator/internal/calculation"
	"github.com/taxaudit/assessment-calculator/internal/config"
	"github.com/taxaudit/assessment-calculator/internal/domain"
	"github.com/taxaudit/assessment-calculator/internal/output"
	"github.com/taxaudit/assessment-calculator/pkg/dateutil"
)

var (
	inputFile  string
	taxYear    string
	formatName string
	verbose    bool
)

// zapLogger adapts a zap SugaredLogger to the engine's Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func newEngine() (*calculation.Engine, error) {
	engine := calculation.NewEngine()
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		logger, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
		engine.SetLogger(zapLogger{s: logger.Sugar()})
	}
	return engine, nil
}

func loadSnapshot() (*domain.Snapshot, error) {
	parser := config.NewInputParser()
	snap, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func resolveYear() domain.TaxYear {
	if taxYear != "" {
		return domain.TaxYear(taxYear)
	}
	// Default to the current April–March fiscal year.
	return domain.TaxYear(dateutil.TaxYearKey(time.Now()))
}

func newAssessCmd() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Compute tax liability and audit-risk score for one tax year",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			assessment, err := engine.ComputeAssessment(snap, resolveYear())
			if err != nil {
				return err
			}
			formatter, ok := output.Get(formatName)
			if !ok {
				return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.Names(), ", "))
			}
			data, err := formatter.Format(assessment)
			if err != nil {
				return fmt.Errorf("formatting failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if outputDir != "" {
				path, err := output.WriteFormatted(formatter, assessment, outputDir, output.Extension(formatName))
				if err != nil {
					return fmt.Errorf("failed to write assessment file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: "+strings.Join(output.Names(), ", "))
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "also write the formatted assessment to a timestamped file in this directory")
	return cmd
}

func newBracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets <taxable-income>",
		Short: "Print the marginal bracket breakdown for a taxable income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxable, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			rules := domain.DefaultTaxRules()
			result, err := calculation.ComputeProgressiveTax(taxable, rules.Brackets)
			if err != nil {
				return err
			}
			for _, b := range result.Portions {
				fmt.Fprintf(cmd.OutOrStdout(), "%7s on %14s = %s\n",
					output.FormatPercentage(b.Rate), output.FormatCurrency(b.Portion), output.FormatCurrency(b.Tax))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total tax: %s\n", output.FormatCurrency(result.TotalTax))
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := config.NewInputParser().CreateExampleSnapshot()
			data, err := yaml.Marshal(snap)
			if err != nil {
				return fmt.Errorf("failed to marshal example snapshot: %w", err)
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "snapshot.yaml", "output file")
	return cmd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taxcalc",
		Short:         "Annual income-tax and unexplained-wealth assessment calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&inputFile, "input", "i", "snapshot.yaml", "snapshot YAML file")
	root.PersistentFlags().StringVarP(&taxYear, "year", "y", "", "tax year key, e.g. 2024 (default: current fiscal year)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newAssessCmd(), newBracketsCmd(), newExampleCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
