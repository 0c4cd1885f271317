package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

func (a *app) newConvertCommand() *cobra.Command {
	var (
		ruleSpec string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Apply one rule to a value",
		Long: `Apply one rule to a value and print the result.

The rule accepts the struct tag syntax, so "description,160" and
"--rule description --limit 160" are equivalent. Without a value argument
the value is read from stdin. A null result (for example an invalid date)
exits with an error.`,
		Example: `  inputkit convert --rule topic "<b>Hello</b>   world"
  echo "2024-05-01 9:30" | inputkit convert --rule date_strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, tagLimit, err := input.ParseRule(ruleSpec)
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = tagLimit
			}

			v, err := a.readValue(cmd, args)
			if err != nil {
				return err
			}

			a.log.Debug("converting value",
				logger.Rule(string(rule)),
				slog.Int("limit", limit),
				slog.Any("value", v),
			)

			s, ok, err := v.Convert(rule, limit)
			if err != nil {
				return err
			}
			if !ok {
				a.log.Warn("value dropped by rule", logger.Rule(string(rule)), logger.Source(v.Source()))
				return fmt.Errorf("%w: rule %s", errNullResult, rule)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVarP(&ruleSpec, "rule", "r", string(input.RuleText), "rule name, optionally with a limit (name[,limit])")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum length in characters for rules that accept one")
	return cmd
}
