// finutil — savings & interest calculator with Indian-rupee formatting.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/e9akhan/finutil/internal/config"
	"github.com/e9akhan/finutil/internal/dataset"
	"github.com/e9akhan/finutil/internal/finance"
	"github.com/e9akhan/finutil/internal/output"
	"github.com/e9akhan/finutil/pkg/money"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// Global settings
var settings *config.Settings

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finutil",
	Short: "Savings and interest calculator with lakh/crore formatting",
	Long: `finutil evaluates simple interest, compound interest, future value
with periodic payments, and the yearly payment needed to reach a savings
goal. Amounts are printed with Indian lakh/crore digit grouping.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(simpleCmd)
	rootCmd.AddCommand(compoundCmd)
	rootCmd.AddCommand(fvCmd)
	rootCmd.AddCommand(savingsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exampleConfigCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(splitCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finutil %s (commit %s)\n", version, commit)
	},
}

// --- Calculator Commands ---

// amountFlag parses a float flag into exact decimal money, rejecting NaN/Inf.
func amountFlag(cmd *cobra.Command, name string) (money.Money, error) {
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return money.Money{}, err
	}
	m, err := money.FromFloat(v)
	if err != nil {
		return money.Money{}, fmt.Errorf("--%s: %w", name, err)
	}
	return m, nil
}

// rateFlag parses a fractional-rate flag with the same finite-float guard.
func rateFlag(cmd *cobra.Command) (decimal.Decimal, error) {
	v, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return decimal.Decimal{}, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, fmt.Errorf("--rate: must be finite, got %v", v)
	}
	return decimal.NewFromFloat(v), nil
}

var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Total amount after simple interest",
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, err := amountFlag(cmd, "principal")
		if err != nil {
			return err
		}
		rate, err := rateFlag(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetInt("term")

		total, err := finance.SimpleInterest(principal.Decimal, term, rate)
		if err != nil {
			return err
		}
		fmt.Println(output.FormatAmount(total))
		return nil
	},
}

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Total amount after compound interest",
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, err := amountFlag(cmd, "principal")
		if err != nil {
			return err
		}
		rate, err := rateFlag(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetInt("term")

		total, err := finance.CompoundInterest(principal.Decimal, term, rate)
		if err != nil {
			return err
		}
		fmt.Println(output.FormatAmount(total))
		return nil
	},
}

var fvCmd = &cobra.Command{
	Use:   "fv",
	Short: "Future value of principal plus yearly payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, err := amountFlag(cmd, "principal")
		if err != nil {
			return err
		}
		payment, err := amountFlag(cmd, "payment")
		if err != nil {
			return err
		}
		rate, err := rateFlag(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetInt("term")
		due, _ := cmd.Flags().GetBool("due")

		total, err := finance.FutureValue(principal.Decimal, payment.Decimal, term, rate, !due)
		if err != nil {
			return err
		}
		fmt.Println(output.FormatAmount(total))
		return nil
	},
}

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Yearly payment needed to reach a future amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		present, err := amountFlag(cmd, "present")
		if err != nil {
			return err
		}
		future, err := amountFlag(cmd, "future")
		if err != nil {
			return err
		}
		rate, err := rateFlag(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetInt("term")
		due, _ := cmd.Flags().GetBool("due")

		payment, err := finance.RequiredPayment(present.Decimal, future.Decimal, term, rate, !due)
		if err != nil {
			return err
		}
		fmt.Println(output.FormatAmount(payment))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{simpleCmd, compoundCmd, fvCmd} {
		cmd.Flags().Float64("principal", 0, "starting amount")
		cmd.Flags().Int("term", 1, "investment period in years")
		cmd.Flags().Float64("rate", 0, "annual interest rate as a fraction, e.g. 0.08")
	}
	fvCmd.Flags().Float64("payment", 0, "payment added every year")
	fvCmd.Flags().Bool("due", false, "apply payments at the start of each year")

	savingsCmd.Flags().Float64("present", 0, "amount already saved")
	savingsCmd.Flags().Float64("future", 0, "target amount")
	savingsCmd.Flags().Int("term", 1, "investment period in years")
	savingsCmd.Flags().Float64("rate", 0, "annual interest rate as a fraction, e.g. 0.08")
	savingsCmd.Flags().Bool("due", false, "apply payments at the start of each year")
}

// --- Plan Command ---

var planCmd = &cobra.Command{
	Use:   "plan [file]",
	Short: "Evaluate every scenario in a YAML plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := finance.NewEngine()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			engine.SetLogger(stderrLogger{})
		}
		report, err := engine.RunPlan(plan)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format == "" {
			format = settings.OutputFormat
		}

		if write, _ := cmd.Flags().GetBool("write"); write {
			path, err := output.GenerateReport(report, format, settings.ReportDir)
			if err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", path)
			return nil
		}

		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
		}
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	planCmd.Flags().String("output", "", "output format: console, console-verbose, csv, csv-detailed, json")
	planCmd.Flags().Bool("write", false, "write the report to a timestamped file instead of stdout")
	planCmd.Flags().Bool("verbose", false, "log engine details to stderr")
}

// --- Example Config Command ---

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [path]",
	Short: "Write an example plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "plan.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := os.WriteFile(path, []byte(config.ExamplePlanYAML), 0644); err != nil {
			return err
		}
		fmt.Printf("example plan written to %s\n", path)
		return nil
	},
}

// --- Dataset Commands ---

var joinCmd = &cobra.Command{
	Use:   "join [file1] [file2]",
	Short: "Join two CSV files on their shared columns",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		out, _ := cmd.Flags().GetString("out")

		var joined []dataset.Record
		var err error
		switch kind {
		case "inner":
			joined, err = dataset.InnerJoin(args[0], args[1], out)
		case "left":
			joined, err = dataset.LeftOuterJoin(args[0], args[1], out)
		case "right":
			joined, err = dataset.RightOuterJoin(args[0], args[1], out)
		default:
			return fmt.Errorf("unknown join kind %q, want inner, left or right", kind)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%d rows written to %s\n", len(joined), out)
		return nil
	},
}

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a CSV file into one file per value of a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupBy, _ := cmd.Flags().GetString("group-by")
		outDir, _ := cmd.Flags().GetString("out-dir")
		if groupBy == "" {
			return fmt.Errorf("--group-by is required")
		}

		written, err := dataset.Split(args[0], groupBy, outDir)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	joinCmd.Flags().String("kind", "inner", "join kind: inner, left or right")
	joinCmd.Flags().String("out", "results.csv", "output file")

	splitCmd.Flags().String("group-by", "", "column whose values partition the file")
	splitCmd.Flags().String("out-dir", ".", "directory for the split files")
}

// stderrLogger writes engine logs to stderr.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logf("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logf("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logf("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logf("ERROR", format, args...) }

func logf(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, level+": "+format+"\n", args...)
}
