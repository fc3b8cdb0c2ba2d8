// Package cmd implements the calc command tree.
package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/config"
)

var (
	cfgFile string
	inname  string
	verb    string
	lenient bool
	explain bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "calc [expr...]",
	Short: "Evaluate calculator expressions",
	Long: longHelp(),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		exprs, err := expressions(args)
		if err != nil {
			return err
		}
		evaluate(cmd.OutOrStdout(), cfg, exprs)
		return nil
	},
}

// Execute runs the command named by the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

func longHelp() string {
	return `calc evaluates arithmetic expressions as typed on a calculator keypad.

Each argument is one expression. With no arguments, each line of the input
file (or stdin) is one expression. Expressions may use the operators ` +
		strings.Join(strings.Split(calculator.Operators, ""), " ") + `, parentheses,
the functions ` + strings.Join(calculator.Functions, " ") + `, and the glyphs π ² √ × ÷ −.
Angles are in degrees.

Failed expressions print "` + calculator.ErrorMarker + `" unless --explain is given. Put -- before
expressions that start with a minus sign.`
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./calc.toml)")
	pf.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	pf.StringVar(&verb, "fmt", "%g", "result formatting string")
	pf.BoolVar(&lenient, "lenient", false, "accept expressions with leftover operands")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log the output of each stage")
	rootCmd.Flags().BoolVar(&explain, "explain", false, "print error details instead of "+calculator.ErrorMarker)
}

// loadConfig reads the config file and applies any flags given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("fmt") {
		cfg.Format = verb
	}
	if fl.Changed("lenient") {
		cfg.Lenient = lenient
	}
	if fl.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if f := fl.Lookup("explain"); f != nil && f.Changed {
		cfg.Explain = explain
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// evaluate prints the result of each expression on its own line.
func evaluate(w io.Writer, cfg *config.Config, exprs []string) {
	opts := cfg.Options()
	for _, src := range exprs {
		r, err := run(cfg, src, opts)
		if err != nil && cfg.Explain {
			fmt.Fprintf(w, "%s: %v\n", calculator.ErrorMarker, err)
			continue
		}
		fmt.Fprintln(w, calculator.Display(r, err, cfg.Format))
	}
}

// run evaluates one expression stage by stage so that verbose mode can log
// each intermediate form.
func run(cfg *config.Config, src string, opts []calculator.Option) (float64, error) {
	toks, err := calculator.Tokenize(src)
	if err != nil {
		return 0, err
	}
	if cfg.Verbose {
		log.Printf("%q tokens: %s", src, calculator.FormatTokens(toks))
	}
	rpn, err := calculator.Postfix(toks)
	if err != nil {
		return 0, err
	}
	if cfg.Verbose {
		log.Printf("%q postfix: %s", src, calculator.FormatTokens(rpn))
	}
	return calculator.EvalPostfix(rpn, opts...)
}
