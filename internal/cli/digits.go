package cli

import (
	"fmt"
	"strconv"

	"github.com/govalues/pi"
	"github.com/spf13/cobra"
)

func (a *app) digitsCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "digits [N]",
		Short: "Prints the first N digits of π",
		Long: `Prints the first N decimal digits of π computed with the spigot
algorithm. The leading 3 counts as the first digit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Digits
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("parsing digit count %q: %w", args[0], err)
				}
			}
			var digits []int
			elapsed, err := a.timed("spigot", func() (err error) {
				digits, err = pi.SpigotDigits(n)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatDigits(digits, raw))
			a.summary(cmd, "computed %d digits in %s", n, round(elapsed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the digits without a decimal point")
	return cmd
}

// formatDigits renders digits as 3.1415..., or as 31415... if raw.
func formatDigits(digits []int, raw bool) string {
	buf := make([]byte, 0, len(digits)+1)
	for i, d := range digits {
		if i == 1 && !raw {
			buf = append(buf, '.')
		}
		buf = append(buf, byte('0'+d))
	}
	return string(buf)
}
