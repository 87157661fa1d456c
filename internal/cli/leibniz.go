package cli

import (
	"fmt"

	"github.com/govalues/pi"
	"github.com/spf13/cobra"
)

func (a *app) leibnizCommand() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "leibniz",
		Short: "Sums the Leibniz series in float64",
		Long: `Sums the first K terms of 4/1 - 4/3 + 4/5 - ... in float64
arithmetic and prints the result with 16 digits after the decimal point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sum float64
			elapsed, err := a.timed("leibniz", func() (err error) {
				sum, err = pi.LeibnizFloat64(iterations)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.16f\n", sum)
			a.summary(cmd, "summed %d terms in %s", iterations, round(elapsed))
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "k", a.cfg.Iterations, "number of series terms")
	return cmd
}

func (a *app) decimalCommand() *cobra.Command {
	var iterations, precision int

	cmd := &cobra.Command{
		Use:   "decimal",
		Short: "Sums the Leibniz series in fixed-point decimal",
		Long: `Sums the first K terms of 4/1 - 4/3 + 4/5 - ... with every term
rounded half up to P digits after the decimal point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sum pi.Decimal
			elapsed, err := a.timed("decimal", func() (err error) {
				sum, err = pi.LeibnizDecimal(iterations, precision)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			a.summary(cmd, "summed %d terms at %d digits in %s", iterations, precision, round(elapsed))
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "k", a.cfg.Iterations, "number of series terms")
	cmd.Flags().IntVarP(&precision, "precision", "p", a.cfg.Precision, "digits after the decimal point")
	return cmd
}
