package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

var rpnCmd = &cobra.Command{
	Use:   "rpn [expr...]",
	Short: "Print expressions in postfix form",
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := expressions(args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, src := range exprs {
			toks, err := calculator.Tokenize(src)
			if err == nil {
				toks, err = calculator.Postfix(toks)
			}
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", calculator.ErrorMarker, err)
				continue
			}
			fmt.Fprintln(w, calculator.FormatTokens(toks))
		}
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [expr...]",
	Short: "Print the tokens of expressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := expressions(args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, src := range exprs {
			toks, err := calculator.Tokenize(src)
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", calculator.ErrorMarker, err)
				continue
			}
			for i, tok := range toks {
				if i > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprintf(w, "%s:%v@%d", tok.Kind, tok, tok.Pos)
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rpnCmd, tokensCmd)
}
